package simd

// byteFrequencies holds empirical byte-rarity ranks derived from English
// text, source code, and binary samples. Lower rank means rarer, and a
// rarer anchor byte makes Memchr-based needle verification more selective
// (fewer false-candidate stalls). Table adapted unchanged from the
// teacher's reference ranking.
var byteFrequencies = [256]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	255, 60, 140, 50, 40, 35, 30, 160, 130, 130, 80, 55, 200, 140, 210, 100,
	180, 190, 170, 150, 140, 140, 130, 120, 120, 120, 150, 100, 70, 160, 70, 50,
	25, 120, 80, 90, 85, 130, 75, 70, 80, 115, 30, 35, 90, 85, 100, 105,
	80, 15, 100, 110, 115, 70, 45, 55, 20, 50, 10, 90, 60, 90, 20, 110,
	30, 225, 140, 170, 165, 245, 135, 130, 150, 200, 25, 65, 175, 155, 195, 205,
	145, 15, 195, 200, 215, 150, 75, 95, 45, 120, 20, 85, 40, 85, 15, 0,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
}

// SelectRareByte returns the rarest byte in needle and its index, used to
// anchor Memmem's candidate search.
func SelectRareByte(needle []byte) (rareByte byte, index int) {
	n := len(needle)
	rareByte, index = needle[0], 0
	minRank := byteFrequencies[rareByte]
	for i := 1; i < n; i++ {
		b := needle[i]
		if rank := byteFrequencies[b]; rank < minRank {
			rareByte, index, minRank = b, i, rank
		}
	}
	return rareByte, index
}

// AlphabetPopcount returns the number of distinct byte values present in b,
// used by the pattern compiler as a kernel-selection hint (spec.md's
// "alphabet popcount" kernel hint): a low-popcount literal (e.g. "AAAA")
// benefits less from rare-byte anchoring than a high-popcount one.
func AlphabetPopcount(b []byte) int {
	var seen [256]bool
	count := 0
	for _, c := range b {
		if !seen[c] {
			seen[c] = true
			count++
		}
	}
	return count
}
