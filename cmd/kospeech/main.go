package main

import (
	"fmt"
	"os"

	"github.com/getcharzp/ko-speech/tts/tacotron"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/up-zero/gotool/fileutil"
)

func main() {
	if err := mainE(); err != nil {
		fmt.Fprintf(os.Stderr, "kospeech: %v\n", err)
		os.Exit(1)
	}
}

func mainE() error {
	fs := ff.NewFlagSet("kospeech")
	var (
		text          = fs.StringLong("text", "", "需要合成的文本")
		output        = fs.StringLong("output", "output.wav", "WAV 输出路径")
		libPath       = fs.StringLong("onnxruntime-lib", "", "onnxruntime 库路径")
		acousticPath  = fs.StringLong("acoustic-model", "./tacotron_weights/tacotron2.onnx", "Tacotron2 ONNX 模型路径")
		vocoderPath   = fs.StringLong("vocoder-model", "./tacotron_weights/hifigan.onnx", "HiFi-GAN ONNX 模型路径")
		tablesPath    = fs.StringLong("tables", "", "语言数据表 JSON 路径 (留空使用内置表)")
		useGriffinLim = fs.BoolLong("griffin-lim", "使用 Griffin-Lim 声码器代替 HiFi-GAN")
		noAlphabet    = fs.BoolLong("no-alphabet", "不将字母替换为韩语读法")
		noNumeral     = fs.BoolLong("no-numeral", "不将数字展开为韩语读法")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("KOSPEECH")); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("解析参数失败: %w", err)
	}

	if *text == "" {
		return fmt.Errorf("text 参数不能为空")
	}

	cfg := tacotron.DefaultConfig()
	cfg.AcousticModelPath = *acousticPath
	cfg.VocoderModelPath = *vocoderPath
	cfg.TablesPath = *tablesPath
	cfg.ConvertAlphabet = !*noAlphabet
	cfg.ConvertNumeral = !*noNumeral
	if *libPath != "" {
		cfg.OnnxRuntimeLibPath = *libPath
	}
	if *useGriffinLim {
		cfg.Vocoder = tacotron.VocoderGriffinLim
		cfg.VocoderModelPath = ""
	}

	engine, err := tacotron.NewEngine(cfg)
	if err != nil {
		return fmt.Errorf("创建引擎失败: %w", err)
	}
	defer engine.Destroy()

	wavData, err := engine.SynthesizeToWav(*text)
	if err != nil {
		return fmt.Errorf("合成失败: %w", err)
	}

	if err := fileutil.FileSave(*output, wavData); err != nil {
		return fmt.Errorf("保存 WAV 失败: %w", err)
	}

	fmt.Printf("已保存: %s\n", *output)
	return nil
}
