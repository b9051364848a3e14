package kospeech

import (
	"fmt"
	"runtime"

	ort "github.com/getcharzp/onnxruntime_purego"
)

// OnnxConfig 封装各引擎共享的 ONNX 运行时初始化参数
type OnnxConfig struct {
	OnnxRuntimeLibPath string // onnxruntime.dll (或 .so, .dylib) 的路径
	UseCuda            bool   // (可选) 是否启用 CUDA
	NumThreads         int    // (可选) ONNX 线程数, 默认由CPU核心数决定
	EnableCpuMemArena  bool   // (可选) 是否启用内存池

	OnnxEngine     *ort.Engine
	SessionOptions *ort.SessionOptions
}

// New 加载 ONNX 运行时并准备会话配置
func (c *OnnxConfig) New() error {
	if c.OnnxRuntimeLibPath == "" {
		c.OnnxRuntimeLibPath = DefaultLibraryPath()
	}

	engine, err := ort.NewEngine(c.OnnxRuntimeLibPath)
	if err != nil {
		return fmt.Errorf("加载 onnxruntime 库失败: %w", err)
	}

	opts, err := engine.NewSessionOptions()
	if err != nil {
		return fmt.Errorf("创建会话配置失败: %w", err)
	}
	if c.NumThreads > 0 {
		opts.SetIntraOpNumThreads(int32(c.NumThreads))
	}
	if c.EnableCpuMemArena {
		opts.SetCpuMemArena(true)
	}
	if c.UseCuda {
		if err := opts.EnableCUDA(); err != nil {
			return fmt.Errorf("启用 CUDA 失败: %w", err)
		}
	}

	c.OnnxEngine = engine
	c.SessionOptions = opts
	return nil
}

// DefaultLibraryPath 返回 onnxruntime 库的默认路径
func DefaultLibraryPath() string {
	switch runtime.GOOS {
	case "windows":
		return "./lib/onnxruntime.dll"
	case "darwin":
		return "./lib/libonnxruntime.dylib"
	default:
		return "./lib/libonnxruntime.so"
	}
}
