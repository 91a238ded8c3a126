package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/dto"
	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeFaqRepo struct {
	faqs map[uuid.UUID]*model.Faq
}

func newFakeFaqRepo() *fakeFaqRepo {
	return &fakeFaqRepo{faqs: make(map[uuid.UUID]*model.Faq)}
}

func (f *fakeFaqRepo) Create(_ context.Context, faq *model.Faq) error {
	if faq.Id == uuid.Nil {
		faq.Id = uuid.New()
	}
	f.faqs[faq.Id] = faq
	return nil
}

func (f *fakeFaqRepo) Update(_ context.Context, faq *model.Faq) error {
	f.faqs[faq.Id] = faq
	return nil
}

func (f *fakeFaqRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.faqs, id)
	return nil
}

func (f *fakeFaqRepo) FindById(_ context.Context, id uuid.UUID) (*model.Faq, error) {
	return f.faqs[id], nil
}

func (f *fakeFaqRepo) FindAllActive(_ context.Context) ([]*model.Faq, error) {
	var out []*model.Faq
	for _, faq := range f.faqs {
		if faq.Active {
			out = append(out, faq)
		}
	}
	return out, nil
}

type fakePublisher struct {
	published []dto.FaqSyncMessage
	err       error
}

func (f *fakePublisher) Publish(_ context.Context, payload []byte) error {
	if f.err != nil {
		return f.err
	}
	var msg dto.FaqSyncMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return err
	}
	f.published = append(f.published, msg)
	return nil
}

func newFaqFixture() (IFaqService, *fakeFaqRepo, *fakePublisher) {
	repo := newFakeFaqRepo()
	pub := &fakePublisher{}
	return NewFaqService(repo, pub, nopLogger{}), repo, pub
}

func TestFaqCreatePublishesUpsert(t *testing.T) {
	svc, repo, pub := newFaqFixture()

	res, err := svc.Create(context.Background(), &dto.CreateFaqRequest{
		Question: "Quels sont les délais de livraison ?",
		Answer:   "Entre 3 et 5 jours ouvrés.",
		Category: "livraison",
		Tags:     []string{"delais", "livraison"},
	})

	assert.NoError(t, err)
	assert.True(t, res.Active)
	assert.Len(t, repo.faqs, 1)
	if assert.Len(t, pub.published, 1) {
		msg := pub.published[0]
		assert.Equal(t, "upsert", msg.Action)
		assert.Equal(t, res.Id, msg.FaqId)
		assert.Equal(t, []string{"delais", "livraison"}, msg.Tags)
	}
}

func TestFaqUpdateDeactivationPublishesDelete(t *testing.T) {
	svc, _, pub := newFaqFixture()

	created, err := svc.Create(context.Background(), &dto.CreateFaqRequest{
		Question: "Comment retourner un article ?",
		Answer:   "Depuis votre espace client, sous 30 jours.",
	})
	assert.NoError(t, err)

	_, err = svc.Update(context.Background(), &dto.UpdateFaqRequest{
		Id:       created.Id,
		Question: "Comment retourner un article ?",
		Answer:   "Depuis votre espace client, sous 30 jours.",
		Active:   false,
	})
	assert.NoError(t, err)

	last := pub.published[len(pub.published)-1]
	assert.Equal(t, "delete", last.Action)
	assert.Equal(t, created.Id, last.FaqId)
}

func TestFaqUpdateMissingReturnsNotFound(t *testing.T) {
	svc, _, _ := newFaqFixture()

	_, err := svc.Update(context.Background(), &dto.UpdateFaqRequest{
		Id:       uuid.New(),
		Question: "Question inconnue ?",
		Answer:   "Réponse.",
	})

	assert.True(t, errors.Is(err, ErrFaqNotFound))
}

func TestFaqDeletePublishesDelete(t *testing.T) {
	svc, repo, pub := newFaqFixture()

	created, err := svc.Create(context.Background(), &dto.CreateFaqRequest{
		Question: "Quels moyens de paiement acceptez-vous ?",
		Answer:   "Carte bancaire et PayPal.",
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(context.Background(), created.Id))
	assert.Empty(t, repo.faqs)

	last := pub.published[len(pub.published)-1]
	assert.Equal(t, "delete", last.Action)
}

// A broken sync bus must never fail the CRUD call itself.
func TestFaqCreateSurvivesPublishFailure(t *testing.T) {
	repo := newFakeFaqRepo()
	pub := &fakePublisher{err: errors.New("bus down")}
	svc := NewFaqService(repo, pub, nopLogger{})

	_, err := svc.Create(context.Background(), &dto.CreateFaqRequest{
		Question: "Comment vous contacter ?",
		Answer:   "Par le formulaire de contact.",
	})

	assert.NoError(t, err)
	assert.Len(t, repo.faqs, 1)
}

func TestFaqResyncRepublishesActiveOnly(t *testing.T) {
	svc, _, pub := newFaqFixture()
	ctx := context.Background()

	a, _ := svc.Create(ctx, &dto.CreateFaqRequest{Question: "Question active numéro un ?", Answer: "Oui."})
	b, _ := svc.Create(ctx, &dto.CreateFaqRequest{Question: "Question désactivée ensuite ?", Answer: "Non."})
	_, err := svc.Update(ctx, &dto.UpdateFaqRequest{Id: b.Id, Question: "Question désactivée ensuite ?", Answer: "Non.", Active: false})
	assert.NoError(t, err)

	pub.published = nil
	count, err := svc.Resync(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	if assert.Len(t, pub.published, 1) {
		assert.Equal(t, a.Id, pub.published[0].FaqId)
	}
}
