package tacotron

import (
	"math"
	"math/cmplx"
	"math/rand"
	"sync"

	"github.com/up-zero/gotool/mediautil"
)

const nFFT = (numFreq - 1) * 2

var (
	window    []float32
	melPinv   [][]float64 // [numFreq][numMels]
	basisOnce sync.Once
)

// initMelBasis 惰性构建梅尔滤波器组及其伪逆
//
// 进程生命周期内只计算一次，之后只读，可并发使用
func initMelBasis() {
	basisOnce.Do(func() {
		window = mediautil.HannWindow(frameLength)
		melBasis := mediautil.MelFilters(SampleRate, nFFT, numMels, fMin, fMax)
		melPinv = pseudoInverse(melBasis)
	})
}

// griffinLim 由 mel 频谱反推波形
//
// 步骤: exp 还原幅度 -> 伪逆映射回线性频谱 -> 随机初相位 ->
// 迭代 STFT/ISTFT 恢复相位 -> 限幅到 [-1, 1]
func griffinLim(mel [][]float32) []float32 {
	initMelBasis()

	frames := 0
	if len(mel) > 0 {
		frames = len(mel[0])
	}
	if frames == 0 {
		return nil
	}

	// S = max(1e-10, pinv · exp(mel)) ^ power
	mag := make([][]float64, frames)
	for f := 0; f < frames; f++ {
		mag[f] = make([]float64, numFreq)
		for k := 0; k < numFreq; k++ {
			sum := 0.0
			for m := 0; m < numMels && m < len(mel); m++ {
				sum += melPinv[k][m] * math.Exp(float64(mel[m][f]))
			}
			if sum < 1e-10 {
				sum = 1e-10
			}
			mag[f][k] = math.Pow(sum, griffinLimPower)
		}
	}

	// 随机初相位
	rng := rand.New(rand.NewSource(1234))
	spec := make([][]complex128, frames)
	for f := range spec {
		spec[f] = make([]complex128, numFreq)
		for k := range spec[f] {
			phase := 2 * math.Pi * rng.Float64()
			spec[f][k] = complex(mag[f][k]*math.Cos(phase), mag[f][k]*math.Sin(phase))
		}
	}

	y := istft(spec)
	for i := 0; i < griffinLimIters; i++ {
		estimate := stft(y)
		for f := 0; f < frames && f < len(estimate); f++ {
			for k := 0; k < numFreq; k++ {
				a := cmplx.Abs(estimate[f][k])
				if a < 1e-16 {
					spec[f][k] = complex(mag[f][k], 0)
					continue
				}
				// 保留幅度，只替换相位
				spec[f][k] = complex(mag[f][k]/a, 0) * estimate[f][k]
			}
		}
		y = istft(spec)
	}

	out := make([]float32, len(y))
	for i, v := range y {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		out[i] = float32(v)
	}
	return out
}

// stft 短时傅里叶变换，返回每帧的前 numFreq 个频点
func stft(y []float64) [][]complex128 {
	padded := padReflect(y, nFFT/2)
	if len(padded) < nFFT {
		return nil
	}

	frames := (len(padded)-nFFT)/frameShift + 1
	out := make([][]complex128, frames)
	buf := make([]complex128, nFFT)

	for i := 0; i < frames; i++ {
		start := i * frameShift
		for j := 0; j < nFFT; j++ {
			if j < frameLength {
				buf[j] = complex(padded[start+j]*float64(window[j]), 0)
			} else {
				buf[j] = 0
			}
		}
		spectrum := mediautil.FFT(buf)

		frame := make([]complex128, numFreq)
		copy(frame, spectrum[:numFreq])
		out[i] = frame
	}
	return out
}

// istft 逆变换: 逐帧 IFFT 后重叠相加，按窗能量归一
func istft(spec [][]complex128) []float64 {
	frames := len(spec)
	if frames == 0 {
		return nil
	}

	outLen := nFFT + (frames-1)*frameShift
	y := make([]float64, outLen)
	wsum := make([]float64, outLen)
	buf := make([]complex128, nFFT)

	for i, frame := range spec {
		// 由共轭对称性补全全频谱
		for k := 0; k < numFreq; k++ {
			buf[k] = frame[k]
		}
		for k := numFreq; k < nFFT; k++ {
			buf[k] = cmplx.Conj(frame[nFFT-k])
		}

		segment := ifft(buf)
		start := i * frameShift
		for j := 0; j < frameLength; j++ {
			w := float64(window[j])
			y[start+j] += real(segment[j]) * w
			wsum[start+j] += w * w
		}
	}

	for i := range y {
		if wsum[i] > 1e-8 {
			y[i] /= wsum[i]
		}
	}

	// 去除 stft 阶段的反射填充
	if len(y) > nFFT {
		y = y[nFFT/2 : len(y)-nFFT/2]
	}
	return y
}

// ifft 通过共轭配合正变换实现逆 FFT
func ifft(x []complex128) []complex128 {
	n := len(x)
	conj := make([]complex128, n)
	for i, v := range x {
		conj[i] = cmplx.Conj(v)
	}
	spectrum := mediautil.FFT(conj)

	out := make([]complex128, n)
	scale := complex(float64(n), 0)
	for i, v := range spectrum {
		out[i] = cmplx.Conj(v) / scale
	}
	return out
}
