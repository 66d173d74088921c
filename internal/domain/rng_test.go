package domain_test

// lcgRNG is a tiny deterministic generator for tests.
type lcgRNG struct{ state uint64 }

func (r *lcgRNG) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state >> 16
}

func (r *lcgRNG) Intn(n int) int { return int(r.next() % uint64(n)) }

func (r *lcgRNG) Float64() float64 { return float64(r.next()%1_000_000) / 1_000_000 }

// zeroRNG picks index 0 and centers every jitter draw.
type zeroRNG struct{}

func (zeroRNG) Intn(int) int     { return 0 }
func (zeroRNG) Float64() float64 { return 0.5 }
