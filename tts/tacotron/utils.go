package tacotron

import "math"

// pseudoInverse 计算梅尔滤波器组的伪逆
//
// 滤波器组行满秩，因此 pinv(M) = Mᵀ(MMᵀ)⁻¹，
// 只需对 numMels x numMels 的格拉姆矩阵求逆
func pseudoInverse(basis [][]float32) [][]float64 {
	rows := len(basis)
	if rows == 0 {
		return nil
	}
	cols := len(basis[0])

	// G = M Mᵀ
	gram := make([][]float64, rows)
	for i := range gram {
		gram[i] = make([]float64, rows)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j <= i; j++ {
			sum := 0.0
			for k := 0; k < cols; k++ {
				sum += float64(basis[i][k]) * float64(basis[j][k])
			}
			gram[i][j] = sum
			gram[j][i] = sum
		}
	}

	inv := invertMatrix(gram)

	// P = Mᵀ G⁻¹
	pinv := make([][]float64, cols)
	for k := 0; k < cols; k++ {
		pinv[k] = make([]float64, rows)
		for j := 0; j < rows; j++ {
			sum := 0.0
			for i := 0; i < rows; i++ {
				sum += float64(basis[i][k]) * inv[i][j]
			}
			pinv[k][j] = sum
		}
	}
	return pinv
}

// invertMatrix 高斯-约当消元求逆，带部分主元选取
func invertMatrix(m [][]float64) [][]float64 {
	n := len(m)
	aug := make([][]float64, n)
	for i := range aug {
		aug[i] = make([]float64, 2*n)
		copy(aug[i], m[i])
		aug[i][n+i] = 1
	}

	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(aug[r][col]) > math.Abs(aug[pivot][col]) {
				pivot = r
			}
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		pv := aug[col][col]
		if math.Abs(pv) < 1e-12 {
			// 奇异列，跳过以避免除零
			continue
		}
		for j := 0; j < 2*n; j++ {
			aug[col][j] /= pv
		}
		for r := 0; r < n; r++ {
			if r == col || aug[r][col] == 0 {
				continue
			}
			factor := aug[r][col]
			for j := 0; j < 2*n; j++ {
				aug[r][j] -= factor * aug[col][j]
			}
		}
	}

	inv := make([][]float64, n)
	for i := range inv {
		inv[i] = append([]float64(nil), aug[i][n:]...)
	}
	return inv
}

// padReflect 反射填充
func padReflect(s []float64, p int) []float64 {
	n := len(s)
	res := make([]float64, n+2*p)
	if n == 0 {
		return res
	}
	copy(res[p:], s)
	for i := 0; i < p; i++ {
		left := p - i
		if left >= n {
			left = n - 1
		}
		right := n - 1 - i
		if right < 0 {
			right = 0
		}
		res[i] = s[left]
		res[n+p+i] = s[right]
	}
	return res
}
