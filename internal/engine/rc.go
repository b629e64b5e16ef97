// internal/engine/rc.go
package engine

// complement maps a nucleotide code to its Watson-Crick complement, covering
// the IUPAC ambiguity codes in both cases. Bytes outside the alphabet map to
// themselves.
var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	for _, p := range [][2]byte{
		{'A', 'T'}, {'C', 'G'},
		{'R', 'Y'}, {'K', 'M'},
		{'B', 'V'}, {'D', 'H'},
	} {
		u0, u1 := p[0], p[1]
		l0, l1 := u0+'a'-'A', u1+'a'-'A'
		complement[u0], complement[u1] = u1, u0
		complement[l0], complement[l1] = l1, l0
	}
	// S, W and N are self-complementary and stay on the identity mapping.
}

// revComp returns the reverse complement of seq as a new slice.
func revComp(seq []byte) []byte {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return out
}
