//go:build gpu

package main

// Registers the GPU accelerator; gg falls back to the CPU rasterizer when
// no adapter is available.
import _ "github.com/gogpu/gg/gpu"
