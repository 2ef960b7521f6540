// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"sync"
	"time"
)

// DryRunWriter is the functional interface for working
// with dry run writers
type DryRunWriter interface {
	// GetWriter creates DryRunWriters writing to the
	// same backend but for different roots (e.g. for
	// configuration and static pages)
	GetWriter(root string) Writer
	// Flush wraps up dryrun writing and flushes
	// results to the underlying writer (e.g. os.Stdout)
	Flush() error
}

type dryRunWriter struct {
	Writer io.Writer
	files  []*file
	mux    sync.Mutex
	t1     time.Time
}

type file struct {
	path string
	size int
}

type writer struct {
	root    string
	factory *dryRunWriter
}

// NewDryRunWritersFactory creates factory for DryRunWriters
// writing to the same backend but for different roots
func NewDryRunWritersFactory(w io.Writer) DryRunWriter {
	return &dryRunWriter{
		Writer: w,
		files:  []*file{},
		t1:     time.Now(),
	}
}

func (d *dryRunWriter) GetWriter(root string) Writer {
	return &writer{
		root:    root,
		factory: d,
	}
}

func (w *writer) Write(name, p string, content []byte) error {
	if len(content) == 0 {
		return nil
	}
	w.factory.mux.Lock()
	defer w.factory.mux.Unlock()
	w.factory.files = append(w.factory.files, &file{
		path: path.Join(w.root, p, name),
		size: len(content),
	})
	return nil
}

// Flush formats and writes the dry-run result to the
// underlying writer
func (d *dryRunWriter) Flush() error {
	var b bytes.Buffer

	d.mux.Lock()
	sort.Slice(d.files, func(i, j int) bool { return d.files[i].path < d.files[j].path })
	format(d.files, &b)
	total := len(d.files)
	d.mux.Unlock()

	elapsedTime := time.Since(d.t1)
	b.WriteString(fmt.Sprintf("\n%d files forged in %f seconds\n", total, elapsedTime.Seconds()))

	if _, err := d.Writer.Write(b.Bytes()); err != nil {
		return fmt.Errorf("failed to flush dry run: %w", err)
	}
	return nil
}

func format(files []*file, b *bytes.Buffer) {
	all := map[string]bool{}
	for _, f := range files {
		dd := strings.Split(f.path, "/")
		for i, s := range dd {
			p := strings.Join(dd[:i+1], "/")
			if all[p] {
				continue
			}
			all[p] = true
			b.WriteString(strings.Repeat("  ", i))
			b.WriteString(s)
			if i == len(dd)-1 && f.size > 0 {
				b.WriteString(fmt.Sprintf(" (%d bytes)", f.size))
			}
			b.WriteString("\n")
		}
	}
}
