package vertex_layout

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
)

// Hash returns an FNV-1a hash over every attribute field in declaration order.
// Equal layouts always hash equal; callers that key on Hash must still confirm matches with Equal.
func (l VertexLayout) Hash() uint64 {
	h := fnv.New64a()
	hashWriteUint32(h, uint32(len(l.attributes)))
	for i := range l.attributes {
		a := &l.attributes[i]
		hashWriteUint32(h, uint32(a.Semantic))
		hashWriteString(h, a.SemanticName)
		hashWriteUint32(h, uint32(a.Format))
		hashWriteUint32(h, a.Binding)
		hashWriteUint32(h, a.Location)
		hashWriteUint32(h, a.Offset)
	}
	return h.Sum64()
}

func hashWriteUint32(h hash.Hash64, v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, _ = h.Write(buf[:])
}

// hashWriteString writes the length before the bytes so that adjacent strings cannot alias.
func hashWriteString(h hash.Hash64, s string) {
	hashWriteUint32(h, uint32(len(s)))
	_, _ = h.Write([]byte(s))
}
