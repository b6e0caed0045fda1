package server

import (
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/opds-community/libopds2-go/opds1"
)

const opdsContentType = "application/atom+xml;profile=opds-catalog"

// opdsCatalog renders the whole catalog as an OPDS 1.x acquisition feed so
// reader apps can browse it. One entry per book, with the author resolved
// to a display name when the link holds.
func (h *handlers) opdsCatalog(w http.ResponseWriter, r *http.Request) {
	rows, err := h.books.List(r.Context())
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	all, err := h.authors.List(r.Context())
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	names := make(map[int64]string, len(all))
	for _, a := range all {
		names[a.Id] = a.FirstName + " " + a.LastName
	}

	feed := opds1.Feed{
		ID:    "urn:library:catalog",
		Title: "Library Catalog",
		Links: []opds1.Link{{
			Rel:      "self",
			Href:     "/opds",
			TypeLink: opdsContentType,
		}},
	}

	for _, book := range rows {
		entry := opds1.Entry{
			ID:    fmt.Sprintf("urn:library:book:%d", book.Id),
			Title: book.Name,
			Content: opds1.Content{
				Content: book.Description,
			},
		}

		if book.AuthorId != nil {
			if name, ok := names[*book.AuthorId]; ok {
				entry.Author = []opds1.Author{{Name: name}}
			}
		}

		if book.Photo != "" {
			entry.Links = append(entry.Links, opds1.Link{
				Rel:  "http://opds-spec.org/image",
				Href: book.Photo,
			})
		}

		feed.Entries = append(feed.Entries, entry)
	}

	bs, err := xml.Marshal(feed)
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	w.Header().Set("Content-Type", opdsContentType)
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(bs)
}
