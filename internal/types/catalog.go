package types

import (
	"strings"
	"time"
)

// Date is a calendar day without a time component, matching the DATE column
// it is stored in. JSON form is "2006-01-02"; full RFC 3339 timestamps are
// accepted on input and truncated.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(bs []byte) error {
	s := strings.Trim(string(bs), `"`)

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
	}

	d.Time = t
	return nil
}

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether the role is one of the two recognized values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

type User struct {
	Id        int64  `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"-"`
	Role      Role   `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type Category struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

type Author struct {
	Id          int64  `json:"id"`
	Photo       string `json:"photo"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth Date   `json:"dateOfBirth"`
}

type Book struct {
	Id          int64  `json:"id"`
	Photo       string `json:"photo"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// CategoryId and AuthorId are nullable: the schema allows a book to be
	// created or left with no category/author link.
	CategoryId *int64 `json:"categoryId"`
	AuthorId   *int64 `json:"authorId"`
}

type Review struct {
	Id         int64  `json:"id"`
	BookId     int64  `json:"bookId"`
	ReviewText string `json:"reviewText"`
	Rating     int32  `json:"rating"`
	Stars      int32  `json:"stars"`
}
