/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package charset

import (
	"github.com/pkg/errors"
)

// cset82 is the 82-character GS1 Application Identifier alphabet permitted
// in "X"-typed components: "!\"%&'()*+,-./0-9:;<=>?A-Z_a-z".
var cset82 = [128]bool{
	'!': true, '"': true, '%': true, '&': true, '\'': true, '(': true, ')': true,
	'*': true, '+': true, ',': true, '-': true, '.': true, '/': true,
	':': true, ';': true, '<': true, '=': true, '>': true, '?': true, '_': true,
	'0': true, '1': true, '2': true, '3': true, '4': true, '5': true,
	'6': true, '7': true, '8': true, '9': true,
	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true,
	'H': true, 'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true,
	'O': true, 'P': true, 'Q': true, 'R': true, 'S': true, 'T': true, 'U': true,
	'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,
	'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true, 'g': true,
	'h': true, 'i': true, 'j': true, 'k': true, 'l': true, 'm': true, 'n': true,
	'o': true, 'p': true, 'q': true, 'r': true, 's': true, 't': true, 'u': true,
	'v': true, 'w': true, 'x': true, 'y': true, 'z': true,
}

// NumericOnly fails unless every byte of value is an ASCII digit.
func NumericOnly(value []byte) error {
	for i, b := range value {
		if b < '0' || b > '9' {
			return errors.Errorf("illegal non-digit character at position %d", i)
		}
	}
	return nil
}

// Cset82Only fails unless every byte of value is in the 82-character GS1
// CSET-82 alphabet.
func Cset82Only(value []byte) error {
	for i, b := range value {
		if b >= 128 || !cset82[b] {
			return errors.Errorf("incorrect CSET 82 character at position %d", i)
		}
	}
	return nil
}

// VerifyMod10CheckDigit interprets value as a run of ASCII digits and checks
// that the final digit is the correct GSx mod-10 check digit for the digits
// preceding it. It never modifies value.
//
// Weights alternate 3 and 1 from the rightmost non-check digit; for
// even-length values (including the check digit) the leftmost digit is
// weighted 3, for odd-length values it is weighted 1.
func VerifyMod10CheckDigit(value []byte) error {
	if err := NumericOnly(value); err != nil {
		return errors.Wrap(err, "incorrect check digit")
	}
	if len(value) == 0 {
		return errors.New("incorrect check digit: value is empty")
	}
	want := mod10CheckDigit(value)
	got := value[len(value)-1] - '0'
	if want != got {
		return errors.Errorf("incorrect check digit: want %d, got %d", want, got)
	}
	return nil
}

// RecomputeMod10CheckDigit returns a copy of value with its final byte
// overwritten with the correct GSx mod-10 check digit. Unlike
// VerifyMod10CheckDigit, this never fails and never inspects the existing
// trailing digit's correctness; it is intended only for the "add check
// digit" convenience path, never for validation.
func RecomputeMod10CheckDigit(value []byte) []byte {
	out := make([]byte, len(value))
	copy(out, value)
	if len(out) == 0 {
		return out
	}
	out[len(out)-1] = mod10CheckDigit(out) + '0'
	return out
}

// mod10CheckDigit computes the check digit for value, where value's final
// byte is the (possibly incorrect) check digit position; only value[:len-1]
// contributes to the sum, but the weighting of that prefix depends on the
// parity of the full length, matching the reference GSx algorithm.
func mod10CheckDigit(value []byte) byte {
	weight := 3
	if len(value)%2 != 0 {
		weight = 1
	}
	sum := 0
	for _, b := range value[:len(value)-1] {
		sum += weight * int(b-'0')
		weight = 4 - weight
	}
	return byte((10 - sum%10) % 10)
}

// PercentDecode decodes "%HH" hexadecimal escapes in in into their literal
// bytes and returns the result. A "%" not followed by two hexadecimal
// digits (case-insensitive) is copied through literally, including the "%"
// itself. Decoding fails once the decoded output would exceed maxLen bytes.
func PercentDecode(in string, maxLen int) (string, error) {
	out := make([]byte, 0, len(in))
	for i := 0; i < len(in); i++ {
		c := in[i]
		if c == '%' && i+2 < len(in) && isHexDigit(in[i+1]) && isHexDigit(in[i+2]) {
			out = append(out, hexByte(in[i+1], in[i+2]))
			i += 2
		} else {
			out = append(out, c)
		}
		if len(out) > maxLen {
			return "", errors.Errorf("decoded value too long (exceeds %d bytes)", maxLen)
		}
	}
	return string(out), nil
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexVal(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

func hexByte(hi, lo byte) byte {
	return hexVal(hi)<<4 | hexVal(lo)
}
