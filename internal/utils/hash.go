// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/binary"
	"encoding/hex"
	"hash"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// digestPool is a package-level pool of reusable unkeyed BLAKE2b-256
// hashers.
var digestPool = sync.Pool{
	New: func() any {
		h, _ := blake2b.New256(nil) // nil key never fails
		return h
	},
}

// ContentDigest returns a hex-encoded BLAKE2b-256 digest of a memo's
// user-visible content. Every field is length-prefixed, so moving text
// between title and content, or splitting a tag in two, changes the
// digest. Tag order is significant.
//
// Example usage:
//
//	if utils.ContentDigest(a.Title, a.Content, a.Tags) == utils.ContentDigest(b.Title, b.Content, b.Tags) {
//	    // same content, versions may still differ
//	}
func ContentDigest(title, content string, tags []string) string {
	h := digestPool.Get().(hash.Hash)
	h.Reset()

	writeField(h, title)
	writeField(h, content)
	writeLen(h, len(tags))
	for _, tag := range tags {
		writeField(h, tag)
	}
	sum := h.Sum(nil)

	h.Reset()
	digestPool.Put(h)

	return hex.EncodeToString(sum)
}

func writeField(h hash.Hash, s string) {
	writeLen(h, len(s))
	h.Write([]byte(s))
}

func writeLen(h hash.Hash, n int) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(n))
	h.Write(buf[:])
}
