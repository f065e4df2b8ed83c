package review

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"Go-Storefront/domain"
	"Go-Storefront/entities"
	"Go-Storefront/internal/utils/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockReviewRepository struct {
	mu       sync.Mutex
	products map[string]*entities.Product
	users    map[uint]*entities.User
	reviews  []*entities.Review
	nextID   uint
	// staleCheck makes ExistsForUser answer as if a competing insert had not landed yet.
	staleCheck bool
}

func newMockReviewRepository() *mockReviewRepository {
	coffee := &entities.Product{Document: entities.Document{ID: 1, DocumentID: "prod-coffee"}, ProductName: "House Blend"}
	return &mockReviewRepository{
		products: map[string]*entities.Product{"1": coffee, "prod-coffee": coffee},
		users: map[uint]*entities.User{
			7: {Document: entities.Document{ID: 7}, Username: "ana"},
			8: {Document: entities.Document{ID: 8}, Username: "budi"},
		},
		nextID: 1,
	}
}

func (m *mockReviewRepository) GetProduct(ctx context.Context, key string) (*entities.Product, error) {
	if p, ok := m.products[key]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockReviewRepository) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockReviewRepository) GetReviewsByProduct(ctx context.Context, productID uint, q *query.Query) ([]*entities.Review, int64, error) {
	var res []*entities.Review
	for _, r := range m.reviews {
		if r.ProductID == productID && r.IsApproved {
			res = append(res, r)
		}
	}
	return res, int64(len(res)), nil
}

func (m *mockReviewRepository) GetReviewStats(ctx context.Context, productID uint) (float64, int64, error) {
	var sum, count int64
	for _, r := range m.reviews {
		if r.ProductID == productID && r.IsApproved {
			sum += int64(r.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

func (m *mockReviewRepository) GetReview(ctx context.Context, key string) (*entities.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.reviews {
		if r.DocumentID == key || strconv.Itoa(int(r.ID)) == key {
			cp := *r
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockReviewRepository) ExistsForUser(ctx context.Context, userID, productID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.staleCheck {
		return false, nil
	}
	for _, r := range m.reviews {
		if r.UserID != nil && *r.UserID == userID && r.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockReviewRepository) CreateReview(ctx context.Context, review *entities.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.reviews {
		if r.ProductID == review.ProductID && r.UserID != nil && review.UserID != nil && *r.UserID == *review.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	review.ID = m.nextID
	review.DocumentID = "review-" + strconv.Itoa(int(m.nextID))
	review.CreatedAt = time.Now()
	m.nextID++
	m.reviews = append(m.reviews, review)
	return nil
}

func (m *mockReviewRepository) UpdateReview(ctx context.Context, review *entities.Review) error {
	for i, r := range m.reviews {
		if r.ID == review.ID {
			m.reviews[i] = review
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockReviewRepository) DeleteReview(ctx context.Context, id uint) error {
	for i, r := range m.reviews {
		if r.ID == id {
			m.reviews = append(m.reviews[:i], m.reviews[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockReviewRepository) IncrementHelpful(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.reviews {
		if r.ID == id {
			r.HelpfulCount++
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type mockMailer struct {
	sent chan string
}

func (m *mockMailer) SendMail(toEmail string, subject string, body string) error {
	m.sent <- subject
	return nil
}

func createReview(t *testing.T, svc ReviewService, userID uint, rating int) domain.Review {
	t.Helper()
	res, err := svc.CreateReview(context.Background(), domain.CreateReviewRequest{
		Product: "prod-coffee",
		Rating:  rating,
		Title:   "Nice",
		Content: "Smooth and nutty",
	}, userID)
	require.NoError(t, err)
	return res
}

func TestCreateReviewDefaultsAuthorAndNotifies(t *testing.T) {
	mailer := &mockMailer{sent: make(chan string, 1)}
	svc := NewReviewService(newMockReviewRepository(), mailer, "owner@example.com")

	res := createReview(t, svc, 7, 5)
	assert.Equal(t, "ana", res.AuthorName)
	assert.Equal(t, 5, res.Rating)
	assert.Equal(t, 0, res.HelpfulCount)

	select {
	case subject := <-mailer.sent:
		assert.Contains(t, subject, "House Blend")
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

func TestCreateReviewOncePerProduct(t *testing.T) {
	svc := NewReviewService(newMockReviewRepository(), nil, "")
	createReview(t, svc, 7, 4)

	_, err := svc.CreateReview(context.Background(), domain.CreateReviewRequest{
		Product: "1", Rating: 2, Content: "changed my mind",
	}, 7)
	assert.ErrorIs(t, err, domain.ErrReviewAlreadyExists)
}

func TestConcurrentCreateKeepsOneReviewPerUser(t *testing.T) {
	repo := newMockReviewRepository()
	repo.staleCheck = true
	svc := NewReviewService(repo, nil, "")

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		dupes   int
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateReview(context.Background(), domain.CreateReviewRequest{
				Product: "prod-coffee", Rating: 4, Content: "again",
			}, 7)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, domain.ErrReviewAlreadyExists):
				dupes++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, 4, dupes)
	assert.Len(t, repo.reviews, 1)
}

func TestCreateReviewRejectsBadInput(t *testing.T) {
	svc := NewReviewService(newMockReviewRepository(), nil, "")

	_, err := svc.CreateReview(context.Background(), domain.CreateReviewRequest{Product: "prod-coffee", Rating: 6, Content: "x"}, 7)
	assert.ErrorIs(t, err, domain.ErrInvalidRating)

	_, err = svc.CreateReview(context.Background(), domain.CreateReviewRequest{Product: "missing", Rating: 3, Content: "x"}, 7)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestUpdateAndDeleteRequireOwnership(t *testing.T) {
	svc := NewReviewService(newMockReviewRepository(), nil, "")
	review := createReview(t, svc, 7, 3)

	_, err := svc.UpdateReview(context.Background(), review.DocumentID, domain.UpdateReviewRequest{Rating: 1}, 8, domain.RoleAuthenticated)
	assert.ErrorIs(t, err, domain.ErrReviewForbidden)

	updated, err := svc.UpdateReview(context.Background(), review.DocumentID, domain.UpdateReviewRequest{Rating: 4, Content: "Even better cold"}, 7, domain.RoleAuthenticated)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)
	assert.Equal(t, "Even better cold", updated.Content)
	assert.Equal(t, "Nice", updated.Title)

	_, err = svc.DeleteReview(context.Background(), review.DocumentID, 8, domain.RoleAuthenticated)
	assert.ErrorIs(t, err, domain.ErrReviewForbidden)

	_, err = svc.DeleteReview(context.Background(), review.DocumentID, 99, domain.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.DeleteReview(context.Background(), review.DocumentID, 7, domain.RoleAuthenticated)
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)
}

func TestMarkHelpfulIncrementsByOne(t *testing.T) {
	svc := NewReviewService(newMockReviewRepository(), nil, "")
	review := createReview(t, svc, 7, 5)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.MarkHelpful(context.Background(), review.DocumentID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	res, err := svc.MarkHelpful(context.Background(), strconv.Itoa(int(review.ID)))
	require.NoError(t, err)
	assert.Equal(t, 11, res.HelpfulCount)

	_, err = svc.MarkHelpful(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)
}

func TestGetReviewsByProductStats(t *testing.T) {
	svc := NewReviewService(newMockReviewRepository(), nil, "")
	createReview(t, svc, 7, 5)
	createReview(t, svc, 8, 2)

	list, err := svc.GetReviewsByProduct(context.Background(), "prod-coffee", query.Params{Page: 1, PageSize: query.DefaultPageSize})
	require.NoError(t, err)
	assert.Len(t, list.Reviews, 2)
	assert.Equal(t, &domain.Stats{Average: 3.5, Count: 2}, list.Stats)
	assert.Equal(t, int64(2), list.Pagination.Total)
	assert.Equal(t, 1, list.Pagination.PageCount)

	_, err = svc.GetReviewsByProduct(context.Background(), "missing", query.Params{Page: 1, PageSize: 10})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = svc.GetReviewsByProduct(context.Background(), "prod-coffee", query.Params{Page: 1, PageSize: 10, Sort: []query.SortField{{Field: "content"}}})
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
}
