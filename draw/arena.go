// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import "github.com/gogpu/wgpu"

// instanceChunkSize is the default size of one instance buffer: 1024
// transforms.
const instanceChunkSize = 1024 * TransformSize

// instanceArena hands out disjoint regions of instance buffers for one
// frame. Queue writes land before the frame's commands execute, so a
// region must never be rewritten until the next frame.
type instanceArena struct {
	alloc func(size uint64) (*wgpu.Buffer, error)
	write func(buf *wgpu.Buffer, offset uint64, data []byte) error

	chunks  []arenaChunk
	current int
	staging []byte
}

type arenaChunk struct {
	buf    *wgpu.Buffer
	size   uint64
	offset uint64
}

// upload writes ts into a fresh region and returns where it landed.
func (a *instanceArena) upload(ts []Transform) (*wgpu.Buffer, uint64, error) {
	a.staging = PackTransforms(a.staging[:0], ts)
	need := uint64(len(a.staging))

	for ; a.current < len(a.chunks); a.current++ {
		c := &a.chunks[a.current]
		if c.size-c.offset >= need {
			return a.place(c)
		}
	}

	size := uint64(instanceChunkSize)
	for size < need {
		size *= 2
	}
	buf, err := a.alloc(size)
	if err != nil {
		return nil, 0, err
	}
	a.chunks = append(a.chunks, arenaChunk{buf: buf, size: size})
	a.current = len(a.chunks) - 1
	return a.place(&a.chunks[a.current])
}

func (a *instanceArena) place(c *arenaChunk) (*wgpu.Buffer, uint64, error) {
	off := c.offset
	if err := a.write(c.buf, off, a.staging); err != nil {
		return nil, 0, err
	}
	c.offset += uint64(len(a.staging))
	return c.buf, off, nil
}

// reset makes every chunk available again.
func (a *instanceArena) reset() {
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	a.current = 0
}

// capacity returns the total bytes held by the arena.
func (a *instanceArena) capacity() uint64 {
	var n uint64
	for _, c := range a.chunks {
		n += c.size
	}
	return n
}

func (a *instanceArena) release() {
	for i := len(a.chunks) - 1; i >= 0; i-- {
		if a.chunks[i].buf != nil {
			a.chunks[i].buf.Release()
		}
	}
	a.chunks = nil
	a.current = 0
}
