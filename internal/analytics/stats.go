package analytics

import "math"

// Mean 算术平均，空集返回未定义
func Mean(values []float64) Score {
	if len(values) == 0 {
		return Undefined()
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return NewScore(sum / float64(len(values)))
}

// StdDev 总体标准差（非样本标准差），空集返回未定义
func StdDev(values []float64) Score {
	mean := Mean(values)
	if !mean.Valid {
		return Undefined()
	}
	var sum float64
	for _, v := range values {
		d := v - mean.Value
		sum += d * d
	}
	return NewScore(math.Sqrt(sum / float64(len(values))))
}
