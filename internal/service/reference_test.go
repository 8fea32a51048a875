package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaymentReference_Format(t *testing.T) {
	ref := NewPaymentReference()

	assert.Regexp(t, referencePattern, ref)
	assert.True(t, strings.HasPrefix(ref, "REG-"))
	assert.Equal(t, ref, strings.ToUpper(ref))
}

func TestNewPaymentReference_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		ref := NewPaymentReference()
		if _, dup := seen[ref]; dup {
			t.Fatalf("duplicate reference after %d generations: %s", i, ref)
		}
		seen[ref] = struct{}{}
	}
}
