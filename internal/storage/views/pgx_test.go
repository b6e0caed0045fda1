package views_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hessin2010king/backend/internal/storage/authors"
	"github.com/hessin2010king/backend/internal/storage/books"
	"github.com/hessin2010king/backend/internal/storage/categories"
	"github.com/hessin2010king/backend/internal/storage/reviews"
	"github.com/hessin2010king/backend/internal/storage/storagetest"
	"github.com/hessin2010king/backend/internal/storage/views"
	"github.com/hessin2010king/backend/internal/types"
)

type fixture struct {
	pg         *pgxpool.Pool
	authors    authors.Repository
	categories categories.Repository
	books      books.Repository
	reviews    reviews.Repository
	views      views.Repository
	ctx        context.Context
}

func setup(t *testing.T) *fixture {
	pg := storagetest.Open(t)
	l := slog.Default()

	return &fixture{
		pg:         pg,
		authors:    authors.NewPGXRepository(pg, l),
		categories: categories.NewPGXRepository(pg, l),
		books:      books.NewPGXRepository(pg, l),
		reviews:    reviews.NewPGXRepository(pg, l),
		views:      views.NewPGXRepository(pg, l),
		ctx:        context.Background(),
	}
}

func (f *fixture) author(t *testing.T, first, last string) *types.Author {
	t.Helper()
	a, err := f.authors.Create(f.ctx, &types.Author{
		FirstName:   first,
		LastName:    last,
		DateOfBirth: types.Date{Time: time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)
	return a
}

func (f *fixture) category(t *testing.T, name string) *types.Category {
	t.Helper()
	c, err := f.categories.Create(f.ctx, &types.Category{Name: name})
	require.NoError(t, err)
	return c
}

func (f *fixture) book(t *testing.T, name string, categoryId, authorId *int64) *types.Book {
	t.Helper()
	b, err := f.books.Create(f.ctx, &types.Book{Name: name, CategoryId: categoryId, AuthorId: authorId})
	require.NoError(t, err)
	return b
}

func (f *fixture) review(t *testing.T, bookId int64, rating int32) {
	t.Helper()
	_, err := f.reviews.Create(f.ctx, &types.Review{BookId: bookId, ReviewText: "r", Rating: rating, Stars: rating})
	require.NoError(t, err)
}

func TestPopularAuthorsIncludesZeroCounts(t *testing.T) {
	f := setup(t)

	quiet := f.author(t, "Quiet", "Writer")
	busy := f.author(t, "Busy", "Writer")
	for i := 0; i < 3; i++ {
		f.book(t, fmt.Sprintf("Book %d", i), nil, &busy.Id)
	}

	rows, err := f.views.PopularAuthors(f.ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, busy.Id, rows[0].Id)
	assert.EqualValues(t, 3, rows[0].BookCount)
	assert.Equal(t, quiet.Id, rows[1].Id)
	assert.EqualValues(t, 0, rows[1].BookCount)
}

func TestPopularCategoriesTopTenDescending(t *testing.T) {
	f := setup(t)

	// 12 categories, category i gets i%3 books: only 10 come back, ordered
	// by descending count
	for i := 0; i < 12; i++ {
		c := f.category(t, fmt.Sprintf("Cat %d", i))
		for j := 0; j < i%3; j++ {
			f.book(t, fmt.Sprintf("Book %d-%d", i, j), &c.Id, nil)
		}
	}

	rows, err := f.views.PopularCategories(f.ctx)
	require.NoError(t, err)
	require.Len(t, rows, 10)

	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].BookCount, rows[i].BookCount)
	}
}

func TestPopularBooksCountsReviewsNotRatings(t *testing.T) {
	f := setup(t)

	loved := f.book(t, "Loved", nil, nil)
	ignored := f.book(t, "Ignored", nil, nil)

	// low ratings but many reviews still wins the popularity ranking
	f.review(t, loved.Id, 1)
	f.review(t, loved.Id, 2)

	rows, err := f.views.PopularBooks(f.ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, loved.Id, rows[0].Id)
	assert.EqualValues(t, 2, rows[0].Popularity)
	assert.Equal(t, ignored.Id, rows[1].Id)
	assert.EqualValues(t, 0, rows[1].Popularity)
}

func TestBookDetail(t *testing.T) {
	f := setup(t)

	category := f.category(t, "Fiction")
	author := f.author(t, "Jane", "Austen")
	book := f.book(t, "Emma", &category.Id, &author.Id)

	f.review(t, book.Id, 4)
	f.review(t, book.Id, 5)

	row, err := f.views.BookDetail(f.ctx, book.Id)
	require.NoError(t, err)
	require.NotNil(t, row)

	assert.Equal(t, "Emma", row.Name)
	require.NotNil(t, row.CategoryName)
	assert.Equal(t, "Fiction", *row.CategoryName)
	require.NotNil(t, row.AuthorName)
	assert.Equal(t, "Jane Austen", *row.AuthorName)
	require.NotNil(t, row.AverageRating)
	assert.InDelta(t, 4.5, *row.AverageRating, 1e-9)
	assert.EqualValues(t, 2, row.ReviewCount)
}

func TestBookDetailZeroReviewsHasNullAverage(t *testing.T) {
	f := setup(t)

	book := f.book(t, "Unreviewed", nil, nil)

	row, err := f.views.BookDetail(f.ctx, book.Id)
	require.NoError(t, err)
	require.NotNil(t, row)

	// no reviews must read as "unknown", not "rated zero"
	assert.Nil(t, row.AverageRating)
	assert.EqualValues(t, 0, row.ReviewCount)
	assert.Nil(t, row.CategoryName)
	assert.Nil(t, row.AuthorName)
}

func TestBookDetailMissingBook(t *testing.T) {
	f := setup(t)

	row, err := f.views.BookDetail(f.ctx, 12345)
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestBooksByAuthorRequiresFullLinks(t *testing.T) {
	f := setup(t)

	category := f.category(t, "Fiction")
	author := f.author(t, "Jane", "Austen")

	linked := f.book(t, "Emma", &category.Id, &author.Id)
	f.book(t, "No Category", nil, &author.Id)

	rows, err := f.views.BooksByAuthor(f.ctx, author.Id)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, linked.Id, rows[0].BookId)
	assert.Equal(t, "Jane Austen", rows[0].AuthorName)
	assert.Equal(t, "Fiction", rows[0].CategoryName)
}

func TestBooksByCategoryExcludesAuthorlessBooks(t *testing.T) {
	f := setup(t)

	category := f.category(t, "Fiction")
	author := f.author(t, "Jane", "Austen")

	book := f.book(t, "Emma", &category.Id, &author.Id)
	// no author, excluded by the authors inner join
	f.book(t, "Anonymous", &category.Id, nil)

	rows, err := f.views.BooksByCategory(f.ctx, category.Id)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, book.Id, rows[0].BookId)
	assert.Equal(t, "Jane Austen", rows[0].AuthorName)
}

func TestDeletedCategoryLeavesDanglingReferences(t *testing.T) {
	f := setup(t)

	category := f.category(t, "Doomed")
	author := f.author(t, "Jane", "Austen")
	book := f.book(t, "Emma", &category.Id, &author.Id)

	require.NoError(t, f.categories.Delete(f.ctx, category.Id))

	// book keeps the dangling id
	all, err := f.books.List(f.ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].CategoryId)
	assert.Equal(t, category.Id, *all[0].CategoryId)

	// listing goes empty because nothing resolves anymore
	rows, err := f.views.BooksByCategory(f.ctx, category.Id)
	require.NoError(t, err)
	assert.Empty(t, rows)

	// the author join still holds but BooksByAuthor now drops the book too
	byAuthor, err := f.views.BooksByAuthor(f.ctx, author.Id)
	require.NoError(t, err)
	assert.Empty(t, byAuthor)

	// detail still resolves, with a null category name
	detail, err := f.views.BookDetail(f.ctx, book.Id)
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Nil(t, detail.CategoryName)
}
