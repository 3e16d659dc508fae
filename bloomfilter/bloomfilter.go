// Package bloomfilter is a probabilistic set of strings. Contains never reports
// a false negative; false positives occur at roughly the configured rate.
package bloomfilter

import (
	"crypto/rand"
	"hash/fnv"
	"math"
	"math/bits"
)

// BloomFilter is not safe for concurrent use.
type BloomFilter struct {
	bitArray []uint64
	size     uint64
	numHash  uint
	numItems uint64
	hashSeed uint64
	capacity uint64
	fpRate   float64
}

// New sizes a filter for expectedItems at the given false positive rate.
// Out-of-range arguments are clamped to sane minimums.
func New(expectedItems uint64, falsePositiveRate float64) *BloomFilter {
	expectedItems = max(expectedItems, 1)
	if falsePositiveRate <= 0 || falsePositiveRate >= 1 {
		falsePositiveRate = 0.01
	}

	size := max(uint64(-float64(expectedItems)*math.Log(falsePositiveRate)/(math.Log(2)*math.Log(2))), 64)
	numHash := min(max(uint(float64(size)/float64(expectedItems)*math.Log(2)), 1), 15)

	wordCount := (size + 63) / 64

	var seedBytes [8]byte
	_, _ = rand.Read(seedBytes[:])
	var seed uint64
	for i, b := range seedBytes {
		seed |= uint64(b) << (8 * i)
	}

	return &BloomFilter{
		bitArray: make([]uint64, wordCount),
		size:     size,
		numHash:  numHash,
		hashSeed: seed,
		capacity: expectedItems,
		fpRate:   falsePositiveRate,
	}
}

// double hashing: h1 + i*h2, h2 forced odd
func (bf *BloomFilter) hash(data []byte, i uint) uint64 {
	h := fnv.New64a()
	h.Write(data)
	var seedBytes [8]byte
	for j := range 8 {
		seedBytes[j] = byte(bf.hashSeed >> (8 * j))
	}
	h.Write(seedBytes[:])
	hash1 := h.Sum64()

	hash2 := hash1>>17 ^ hash1<<47 ^ uint64(i)*0x9e3779b97f4a7c15
	if hash2%2 == 0 {
		hash2++
	}

	return (hash1 + uint64(i)*hash2) % bf.size
}

// Add inserts s.
func (bf *BloomFilter) Add(s string) {
	data := []byte(s)
	for i := uint(0); i < bf.numHash; i++ {
		pos := bf.hash(data, i)
		bf.bitArray[pos/64] |= 1 << (pos % 64)
	}
	bf.numItems++
}

// Contains reports whether s may have been added.
func (bf *BloomFilter) Contains(s string) bool {
	data := []byte(s)
	for i := uint(0); i < bf.numHash; i++ {
		pos := bf.hash(data, i)
		if bf.bitArray[pos/64]&(1<<(pos%64)) == 0 {
			return false
		}
	}
	return true
}

// Len is the number of Add calls since creation or the last Reset.
func (bf *BloomFilter) Len() uint64 { return bf.numItems }

// Saturated reports whether more items were added than the filter was sized for.
func (bf *BloomFilter) Saturated() bool { return bf.numItems > bf.capacity }

// Capacity is the expected item count the filter was sized for.
func (bf *BloomFilter) Capacity() uint64 { return bf.capacity }

// FalsePositiveRate is the target rate the filter was sized for.
func (bf *BloomFilter) FalsePositiveRate() float64 { return bf.fpRate }

// Reset clears every bit.
func (bf *BloomFilter) Reset() {
	clear(bf.bitArray)
	bf.numItems = 0
}

// Stats reports set bits, fill ratio and the estimated current false positive rate.
func (bf *BloomFilter) Stats() (setBits uint64, fillRatio, estimatedFPR float64) {
	for _, word := range bf.bitArray {
		setBits += uint64(bits.OnesCount64(word))
	}

	fillRatio = float64(setBits) / float64(bf.size)
	estimatedFPR = math.Pow(fillRatio, float64(bf.numHash))

	return setBits, fillRatio, estimatedFPR
}
