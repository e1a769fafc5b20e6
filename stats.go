package symtable

type Stats struct {
	Size         int
	Capacity     int
	Step         int
	LoadFactor   float32
	UsedBuckets  int
	LongestChain int
}
