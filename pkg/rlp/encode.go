// Copyright © 2024 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rlp

// encodeBytes applies the core RLP framing rule to a body that is either a
// byte string (isList=false) or the already-concatenated encoding of a
// list's children (isList=true).
func encodeBytes(body []byte, isList bool) []byte {
	base := shortString
	if isList {
		base = shortList
	}
	if !isList && len(body) == 1 && body[0] < shortString {
		// Single byte < 0x80 is its own encoding - no prefix needed.
		return body
	}
	if len(body) <= 55 {
		out := make([]byte, len(body)+1)
		out[0] = base + byte(len(body))
		copy(out[1:], body)
		return out
	}
	lenBytes := minimalBytes(uint64(len(body)))
	out := make([]byte, 1+len(lenBytes)+len(body))
	out[0] = base + (longString - shortString) + byte(len(lenBytes))
	copy(out[1:], lenBytes)
	copy(out[1+len(lenBytes):], body)
	return out
}

// minimalBytes is the minimal big-endian encoding of v, with no leading zero
// bytes. Used only for length prefixes (not the public scalar encoding,
// which goes through big.Int.Bytes() in rlp.go).
func minimalBytes(v uint64) []byte {
	if v == 0 {
		return []byte{}
	}
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * (7 - i)))
	}
	for i := 0; i < 8; i++ {
		if buf[i] != 0 {
			return buf[i:]
		}
	}
	return []byte{}
}
