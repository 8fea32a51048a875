package service

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewPaymentReference builds an opaque reference of the form
// REG-<base36 ms timestamp>-<5 random base36 chars>, upper-cased. The store's
// unique constraint catches the rare collision and the caller regenerates.
func NewPaymentReference() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)

	buf := make([]byte, 5)
	rand.Read(buf)
	for i := range buf {
		buf[i] = base36[int(buf[i])%len(base36)]
	}

	return strings.ToUpper("REG-" + ts + "-" + string(buf))
}
