package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Reference prefixes for system-generated identifiers.
const (
	TxnReferencePrefix      = "TXN"
	ReceiptNumberPrefix     = "RCP"
	ReversalReferencePrefix = "REV"
)

// NewTxnReference generates a transaction reference of the form
// TXN-<epochMillis>-<8hexrandom>.
func NewTxnReference() string {
	return newReference(TxnReferencePrefix)
}

// NewReceiptNumber generates a receipt number of the form
// RCP-<epochMillis>-<8hexrandom>.
func NewReceiptNumber() string {
	return newReference(ReceiptNumberPrefix)
}

// NewReversalReference generates a reversal reference of the form
// REV-<epochMillis>-<8hexrandom>.
func NewReversalReference() string {
	return newReference(ReversalReferencePrefix)
}

func newReference(prefix string) string {
	buf := make([]byte, 4)
	// rand.Read on the crypto source never fails on supported platforms.
	_, _ = rand.Read(buf)
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), hex.EncodeToString(buf))
}
