/*
 * Copyright 2022 CECTC, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package misc

import (
	"unicode/utf16"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
)

var wideEncoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// EncodeWide converts s into UTF-16LE wide characters.
func EncodeWide(s string) ([]byte, error) {
	b, err := wideEncoding.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, errors.Wrap(err, "encode wide string")
	}
	return b, nil
}

// DecodeWide converts UTF-16LE wide characters into a string.
func DecodeWide(b []byte) (string, error) {
	s, err := wideEncoding.NewDecoder().Bytes(b)
	if err != nil {
		return "", errors.Wrap(err, "decode wide string")
	}
	return string(s), nil
}

// WideLen returns the number of UTF-16 code units needed for s.
func WideLen(s string) int {
	return len(utf16.Encode([]rune(s)))
}
