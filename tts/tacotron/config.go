package tacotron

import kospeech "github.com/getcharzp/ko-speech"

const (
	// SampleRate 采样率，默认为 22050
	SampleRate = 22050
	// channels 声道数
	channels = 1
	// bitsPerSample 采样位数
	bitsPerSample = 16

	// 频谱参数，需与训练时保持一致
	numMels     = 80
	numFreq     = 1025
	frameShift  = 256
	frameLength = 1024
	fMin        = 0
	fMax        = 8000

	// Griffin-Lim 重建参数
	griffinLimIters = 30
	griffinLimPower = 1.5

	// maxDecoderFrames 解码帧数上限，达到上限通常意味着停止门预测失败
	maxDecoderFrames = 2000
)

// VocoderType 声码器类型标签
//
// 显式指定而不是根据权重形状推断
type VocoderType string

const (
	// VocoderHiFiGAN 神经声码器 (HiFi-GAN ONNX 模型)
	VocoderHiFiGAN VocoderType = "hifigan"
	// VocoderGriffinLim 经典 Griffin-Lim 频谱反推，无需额外模型，音质较差
	VocoderGriffinLim VocoderType = "griffinlim"
)

// Config 定义 Tacotron2 引擎的配置参数
type Config struct {
	// 必填参数
	OnnxRuntimeLibPath string // onnxruntime.dll (或 .so, .dylib) 的路径
	AcousticModelPath  string // Tacotron2 ONNX 模型路径
	VocoderModelPath   string // HiFi-GAN ONNX 模型路径 (VocoderGriffinLim 时可留空)

	// 可选参数
	Vocoder           VocoderType // 声码器选择, 默认 VocoderHiFiGAN
	TablesPath        string      // 语言数据表 JSON 路径, 留空使用内置表
	ConvertAlphabet   bool        // 是否将字母替换为韩语读法
	ConvertNumeral    bool        // 是否将数字展开为韩语读法
	UseCuda           bool        // (可选) 是否启用 CUDA
	NumThreads        int         // (可选) ONNX 线程数, 默认由CPU核心数决定
	EnableCpuMemArena bool        // (可选) 是否启用内存池
}

// DefaultConfig 返回一套默认的配置 (基于常见的目录结构)
func DefaultConfig() Config {
	return Config{
		OnnxRuntimeLibPath: kospeech.DefaultLibraryPath(),
		AcousticModelPath:  "./tacotron_weights/tacotron2.onnx",
		VocoderModelPath:   "./tacotron_weights/hifigan.onnx",
		Vocoder:            VocoderHiFiGAN,
		ConvertAlphabet:    true,
		ConvertNumeral:     true,
	}
}
