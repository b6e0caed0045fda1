package views

import "context"

// AuthorRank is one row of the popular-authors leaderboard. BookCount is 0
// for authors nothing links to yet.
type AuthorRank struct {
	Id        int64  `json:"id" db:"id"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	BookCount int64  `json:"bookCount" db:"book_count"`
}

type CategoryRank struct {
	Id        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	BookCount int64  `json:"bookCount" db:"book_count"`
}

// BookRank ranks books by review count. Popularity is how many reviews the
// book has, not how well it was rated.
type BookRank struct {
	Id         int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	Popularity int64  `json:"popularity" db:"popularity"`
}

// BookDetail is the composite single-book view. CategoryName and AuthorName
// are nil when the book has no (or a dangling) link. AverageRating is nil
// when there are no reviews, which is not the same thing as a zero rating.
type BookDetail struct {
	Id            int64    `json:"bookId" db:"id"`
	Name          string   `json:"bookName" db:"name"`
	Photo         string   `json:"bookPhoto" db:"photo"`
	Description   string   `json:"bookDescription" db:"description"`
	CategoryName  *string  `json:"categoryName" db:"category_name"`
	AuthorName    *string  `json:"authorName" db:"author_name"`
	AverageRating *float64 `json:"averageRating" db:"average_rating"`
	ReviewCount   int64    `json:"reviewCount" db:"review_count"`
}

type BookByAuthor struct {
	BookId       int64  `json:"bookId" db:"book_id"`
	BookName     string `json:"bookName" db:"book_name"`
	BookPhoto    string `json:"bookPhoto" db:"book_photo"`
	AuthorId     int64  `json:"authorId" db:"author_id"`
	AuthorName   string `json:"authorName" db:"author_name"`
	CategoryName string `json:"categoryName" db:"category_name"`
}

type BookByCategory struct {
	BookId     int64  `json:"bookId" db:"book_id"`
	BookName   string `json:"bookName" db:"book_name"`
	BookPhoto  string `json:"bookPhoto" db:"book_photo"`
	AuthorId   int64  `json:"authorId" db:"author_id"`
	AuthorName string `json:"authorName" db:"author_name"`
}

// Repository computes composite read-only views across the catalog tables.
// Nothing in here ever writes.
type Repository interface {
	// PopularAuthors returns up to 10 authors by descending book count,
	// zero-book authors included.
	PopularAuthors(ctx context.Context) ([]AuthorRank, error)
	// PopularCategories returns up to 10 categories by descending book count.
	PopularCategories(ctx context.Context) ([]CategoryRank, error)
	// PopularBooks returns up to 10 books by descending review count.
	PopularBooks(ctx context.Context) ([]BookRank, error)

	// BookDetail returns nil (no error) when the book id does not exist.
	BookDetail(ctx context.Context, id int64) (*BookDetail, error)

	// BooksByAuthor lists fully-linked books only: a book whose category
	// reference dangles is excluded (inner join), unlike BookDetail.
	BooksByAuthor(ctx context.Context, authorId int64) ([]BookByAuthor, error)
	// BooksByCategory likewise requires both links to resolve; it differs
	// from BooksByAuthor only in not returning the category name.
	BooksByCategory(ctx context.Context, categoryId int64) ([]BookByCategory, error)
}
