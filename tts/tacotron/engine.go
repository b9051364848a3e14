package tacotron

import (
	"fmt"

	kospeech "github.com/getcharzp/ko-speech"
	"github.com/getcharzp/ko-speech/text/korean"
	ort "github.com/getcharzp/onnxruntime_purego"
	"github.com/up-zero/gotool/convertutil"
	"github.com/up-zero/gotool/mediautil"
)

// Engine 封装 Tacotron2 声学模型、声码器的 ONNX 运行时与韩语文本前端
type Engine struct {
	acousticSession *ort.Session
	vocoderSession  *ort.Session
	table           *korean.Table
	normalizer      *korean.Normalizer
	config          Config
}

// NewEngine 初始化 Tacotron2 引擎
func NewEngine(cfg Config) (*Engine, error) {
	oc := new(kospeech.OnnxConfig)
	if err := convertutil.CopyProperties(cfg, oc); err != nil {
		return nil, fmt.Errorf("复制参数失败: %w", err)
	}
	// 初始化 ONNX
	if err := oc.New(); err != nil {
		return nil, err
	}

	if cfg.AcousticModelPath == "" {
		return nil, fmt.Errorf("声学模型路径不能为空")
	}
	if cfg.Vocoder == "" {
		cfg.Vocoder = VocoderHiFiGAN
	}
	if cfg.Vocoder == VocoderHiFiGAN && cfg.VocoderModelPath == "" {
		return nil, fmt.Errorf("HiFi-GAN 声码器需要指定模型路径")
	}

	// 加载语言数据表并构建文本前端
	tables := korean.DefaultTables()
	if cfg.TablesPath != "" {
		var err error
		tables, err = korean.LoadTables(cfg.TablesPath)
		if err != nil {
			return nil, fmt.Errorf("加载语言数据表失败: %w", err)
		}
	}
	normalizer, err := korean.NewNormalizer(tables, cfg.ConvertAlphabet, cfg.ConvertNumeral)
	if err != nil {
		return nil, fmt.Errorf("构建文本标准化器失败: %w", err)
	}

	// 创建 ONNX 会话
	acousticSession, err := oc.OnnxEngine.NewSession(cfg.AcousticModelPath, oc.SessionOptions)
	if err != nil {
		return nil, fmt.Errorf("创建声学模型会话失败: %w", err)
	}

	var vocoderSession *ort.Session
	if cfg.Vocoder == VocoderHiFiGAN {
		vocoderSession, err = oc.OnnxEngine.NewSession(cfg.VocoderModelPath, oc.SessionOptions)
		if err != nil {
			acousticSession.Destroy()
			return nil, fmt.Errorf("创建声码器会话失败: %w", err)
		}
	}

	return &Engine{
		acousticSession: acousticSession,
		vocoderSession:  vocoderSession,
		table:           tables.Table(),
		normalizer:      normalizer,
		config:          cfg,
	}, nil
}

// Synthesize 将文本合成为语音数据 (float32 PCM, 范围 [-1, 1])
//
// # Params:
//
//	text: 需要合成的文本
func (e *Engine) Synthesize(text string) ([]float32, error) {
	inputIDs := e.textToIDs(text)
	if len(inputIDs) == 0 {
		return nil, fmt.Errorf("文本前端未产生任何有效符号")
	}

	mel, err := e.runAcoustic(inputIDs)
	if err != nil {
		return nil, err
	}

	if e.config.Vocoder == VocoderGriffinLim {
		return griffinLim(mel), nil
	}
	return e.runVocoder(mel)
}

// SynthesizeToWav 合成并导出为 WAV 字节流
func (e *Engine) SynthesizeToWav(text string) ([]byte, error) {
	pcmData, err := e.Synthesize(text)
	if err != nil {
		return nil, err
	}

	return mediautil.Float32ToWavBytes(pcmData, SampleRate, channels, bitsPerSample)
}

// runAcoustic 执行声学模型推理，返回 mel 频谱 [numMels][frames]
func (e *Engine) runAcoustic(inputIDs []int64) ([][]float32, error) {
	seqLength := int64(len(inputIDs))

	// sequence [1, seqLength]
	tSeq, err := ort.NewTensor([]int64{1, seqLength}, inputIDs)
	if err != nil {
		return nil, fmt.Errorf("构建 sequence 失败: %w", err)
	}
	defer tSeq.Destroy()

	inputValues := map[string]*ort.Value{
		"sequence": tSeq,
	}

	outputValues, err := e.acousticSession.Run(inputValues)
	if err != nil {
		return nil, fmt.Errorf("声学模型推理失败: %w", err)
	}

	defer func() {
		for _, v := range outputValues {
			if v != nil {
				v.Destroy()
			}
		}
	}()

	// alignments 仅供调试，这里只消费 mel 频谱
	melValue := outputValues["mel_outputs_postnet"]
	if melValue == nil {
		return nil, fmt.Errorf("声学模型输出缺少 mel_outputs_postnet")
	}

	rawData, err := ort.GetTensorData[float32](melValue)
	if err != nil {
		return nil, fmt.Errorf("读取 mel 数据失败: %w", err)
	}
	shape, err := melValue.GetShape()
	if err != nil {
		return nil, fmt.Errorf("读取 mel 形状失败: %w", err)
	}
	if len(shape) < 3 || shape[1] != numMels {
		return nil, fmt.Errorf("mel 输出形状异常: %v", shape)
	}

	frames := int(shape[2])
	if frames >= maxDecoderFrames {
		// 停止门没有预测到语音结束，结尾往往带有杂音
		fmt.Printf("[WARN] 解码达到最大帧数 %d, 建议缩短文本后重试\n", maxDecoderFrames)
	}

	// [1, numMels, frames] -> [numMels][frames]
	mel := make([][]float32, numMels)
	for m := 0; m < numMels; m++ {
		mel[m] = make([]float32, frames)
		copy(mel[m], rawData[m*frames:(m+1)*frames])
	}
	return mel, nil
}

// runVocoder 执行 HiFi-GAN 声码器推理
func (e *Engine) runVocoder(mel [][]float32) ([]float32, error) {
	frames := 0
	if len(mel) > 0 {
		frames = len(mel[0])
	}

	flat := make([]float32, numMels*frames)
	for m, row := range mel {
		copy(flat[m*frames:], row)
	}

	// mel [1, numMels, frames]
	tMel, err := ort.NewTensor([]int64{1, numMels, int64(frames)}, flat)
	if err != nil {
		return nil, fmt.Errorf("构建 mel tensor 失败: %w", err)
	}
	defer tMel.Destroy()

	outputValues, err := e.vocoderSession.Run(map[string]*ort.Value{
		"mel": tMel,
	})
	if err != nil {
		return nil, fmt.Errorf("声码器推理失败: %w", err)
	}

	defer func() {
		for _, v := range outputValues {
			if v != nil {
				v.Destroy()
			}
		}
	}()

	audioValue := outputValues["audio"]
	if audioValue == nil {
		return nil, fmt.Errorf("声码器输出缺少 audio")
	}

	rawData, err := ort.GetTensorData[float32](audioValue)
	if err != nil {
		return nil, fmt.Errorf("读取音频数据失败: %w", err)
	}

	result := make([]float32, len(rawData))
	copy(result, rawData)
	return result, nil
}

// Destroy 释放相关资源
func (e *Engine) Destroy() error {
	if e.acousticSession != nil {
		e.acousticSession.Destroy()
	}
	if e.vocoderSession != nil {
		e.vocoderSession.Destroy()
	}
	return nil
}
