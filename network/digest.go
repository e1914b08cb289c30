package network

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"omni/bridge"
)

// MessageDigest computes the canonical digest a relayer signs over one
// cross-chain message. Layout: origin(4) | destination(4) | sequence(8) |
// recipient | 0x00 | amount decimal string.
func MessageDigest(msg *bridge.OutboundMessage) [32]byte {
	buf := make([]byte, 0, 16+len(msg.Recipient)+1+len(msg.Amount.Dec()))

	var u32 [4]byte
	binary.BigEndian.PutUint32(u32[:], msg.OriginDomain)
	buf = append(buf, u32[:]...)
	binary.BigEndian.PutUint32(u32[:], msg.DestinationDomain)
	buf = append(buf, u32[:]...)

	var u64 [8]byte
	binary.BigEndian.PutUint64(u64[:], msg.Sequence)
	buf = append(buf, u64[:]...)

	buf = append(buf, []byte(msg.Recipient)...)
	buf = append(buf, 0x00)
	buf = append(buf, []byte(msg.Amount.Dec())...)

	return blake2b.Sum256(buf)
}
