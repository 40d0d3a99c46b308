package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewTypeValid(t *testing.T) {
	assert.True(t, ReviewTypeBook.Valid())
	assert.True(t, ReviewTypeUser.Valid())
	assert.True(t, ReviewTypeTransaction.Valid())

	assert.False(t, ReviewType("").Valid())
	assert.False(t, ReviewType("product").Valid())
}
