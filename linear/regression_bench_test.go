package linear

import (
	"math/rand"
	"testing"
)

// createBenchmarkData はベンチマーク用の観測データを生成する
func createBenchmarkData(rows int) []Observation {
	// シードを固定して再現性を確保
	rng := rand.New(rand.NewSource(42))

	observations := make([]Observation, rows)
	for i := range observations {
		distance := rng.Float64() * 300
		minutes := distance*0.9 + rng.Float64()*20
		observations[i] = Observation{
			Distance: distance,
			Time:     minutes,
			// 小さなノイズを追加
			Price: 20 + 0.4*distance + 0.03*minutes + (rng.Float64()-0.5)*0.1,
		}
	}
	return observations
}

// BenchmarkRegressorFit はFitメソッドのベンチマークを実行する
func BenchmarkRegressorFit(b *testing.B) {
	sizes := []struct {
		name string
		rows int
	}{
		{"Small_6", 6},
		{"Small_500", 500},
		{"Medium_1000", 1000}, // 並列処理の閾値
		{"Medium_2000", 2000},
		{"Large_10000", 10000},
		{"XLarge_50000", 50000},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			observations := createBenchmarkData(size.rows)
			r := NewRegressor()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := r.Fit(observations); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkDesignMatrix は計画行列の構築部分のみを測定する
func BenchmarkDesignMatrix(b *testing.B) {
	observations := createBenchmarkData(50000)

	b.Run("Sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			designMatrix(observations, len(observations))
		}
	})
	b.Run("Parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			designMatrix(observations, defaultParallelThreshold)
		}
	})
}
