package telemetry

import (
	"hash/crc32"
	"strconv"
)

// ChecksumBody rebuilds the bytes the firmware feeds into its CRC: every
// non-checksum token in schema order, each followed by Separator.
func ChecksumBody(tokens []string) []byte {
	size := 0
	for i, tok := range tokens {
		if FieldIndex(i) != FieldChecksum {
			size += len(tok) + 1
		}
	}
	body := make([]byte, 0, size)
	for i, tok := range tokens {
		if FieldIndex(i) == FieldChecksum {
			continue
		}
		body = append(body, tok...)
		body = append(body, Separator)
	}
	return body
}

// Checksum computes the CRC-32 (IEEE) of the checksum body of tokens.
func Checksum(tokens []string) uint32 {
	return crc32.ChecksumIEEE(ChecksumBody(tokens))
}

// VerifyChecksum parses the transmitted checksum and compares it with the
// one computed over the other tokens. tokens must hold FieldCount entries.
func VerifyChecksum(tokens []string) (uint32, error) {
	remote, err := strconv.ParseUint(tokens[FieldChecksum], 10, 32)
	if err != nil {
		return 0, ErrChecksumUnparsable
	}
	if uint32(remote) != Checksum(tokens) {
		return uint32(remote), ErrChecksumMismatch
	}
	return uint32(remote), nil
}
