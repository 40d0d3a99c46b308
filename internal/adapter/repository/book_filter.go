package repository

import (
	"sort"
	"strings"

	"vidyashare/internal/domain/entity"
	"vidyashare/internal/domain/repository"
)

// The price-range and free-text parts of a listing query are applied in
// memory: Firestore cannot combine a range filter with ordering on another
// field, and has no substring search at all.

func matchesQuery(book *entity.Book, q repository.BookQuery) bool {
	if q.MinPrice > 0 && book.SellingPrice < q.MinPrice {
		return false
	}
	if q.MaxPrice > 0 && book.SellingPrice > q.MaxPrice {
		return false
	}
	if q.Search != "" && !matchesSearch(book, q.Search) {
		return false
	}
	return true
}

// matchesSearch is a case-insensitive substring match over title, author
// and isbn.
func matchesSearch(book *entity.Book, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(book.Title), term) ||
		strings.Contains(strings.ToLower(book.Author), term) ||
		strings.Contains(strings.ToLower(book.ISBN), term)
}

func sortBooks(books []*entity.Book, sortKey string) {
	switch sortKey {
	case "price_low":
		sort.SliceStable(books, func(i, j int) bool {
			return books[i].SellingPrice < books[j].SellingPrice
		})
	case "price_high":
		sort.SliceStable(books, func(i, j int) bool {
			return books[i].SellingPrice > books[j].SellingPrice
		})
	case "rating":
		sort.SliceStable(books, func(i, j int) bool {
			return books[i].AverageRating > books[j].AverageRating
		})
	default: // newest
		sort.SliceStable(books, func(i, j int) bool {
			return books[i].CreatedAt.After(books[j].CreatedAt)
		})
	}
}

func paginateBooks(books []*entity.Book, limit, offset int) []*entity.Book {
	if offset >= len(books) {
		return []*entity.Book{}
	}
	end := len(books)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return books[offset:end]
}
