package renderer

// RenderError classifies the failures a Renderer can report through its
// error callback.
type RenderError int

const (
	// ErrInitializationFailed means the renderer was used before a
	// successful Initialize, or Initialize was given a config of the wrong
	// concrete type for this variant.
	ErrInitializationFailed RenderError = iota

	// ErrShaderCompilationFailed means the vertex or fragment shader failed
	// to compile, or the program failed to link. The message carries the
	// driver diagnostic text.
	ErrShaderCompilationFailed

	// ErrBufferCreationFailed means the config's vertex data was empty or
	// could not be uploaded to the GPU.
	ErrBufferCreationFailed
)

func (e RenderError) String() string {
	switch e {
	case ErrInitializationFailed:
		return "InitializationFailed"
	case ErrShaderCompilationFailed:
		return "ShaderCompilationFailed"
	case ErrBufferCreationFailed:
		return "BufferCreationFailed"
	default:
		return "UnknownRenderError"
	}
}

// ErrorCallback receives every failure a Renderer reports. At most one
// callback is active per renderer; setting a new one replaces the old.
type ErrorCallback func(err RenderError, message string)
