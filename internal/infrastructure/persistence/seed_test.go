package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bookhub/backend/internal/domain/catalog"
	"github.com/bookhub/backend/internal/domain/engagement"
)

func newSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&catalog.Book{},
		&catalog.Category{},
		&engagement.Testimonial{},
		&engagement.ContactMessage{},
		&engagement.Subscription{},
	)
	require.NoError(t, err)

	return db
}

func TestSeeder_Run(t *testing.T) {
	db := newSeedTestDB(t)
	books := NewGormBookRepository(db)
	categories := NewGormCategoryRepository(db)
	testimonials := NewGormTestimonialRepository(db)

	seeder := NewSeeder(books, categories, testimonials, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx))

	bookCount, err := books.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), bookCount)

	categoryCount, err := categories.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), categoryCount)

	testimonialCount, err := testimonials.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), testimonialCount)

	featured, err := books.FindFeatured(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, featured)

	// second run must not duplicate anything
	require.NoError(t, seeder.Run(ctx))

	bookCount, err = books.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), bookCount)
}

func TestSeeder_SubscriptionUniqueness(t *testing.T) {
	db := newSeedTestDB(t)
	subscriptions := NewGormSubscriptionRepository(db)
	ctx := context.Background()

	sub, err := engagement.NewSubscription("Reader@Example.com")
	require.NoError(t, err)
	require.NoError(t, subscriptions.Save(ctx, sub))

	// same address, different case, normalizes to a duplicate
	dup, err := engagement.NewSubscription("reader@example.com")
	require.NoError(t, err)
	err = subscriptions.Save(ctx, dup)
	assert.Error(t, err)
}
