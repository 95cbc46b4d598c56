//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFileAbsolute(t *testing.T) {
	abs := filepath.Join(os.TempDir(), "boson-resolve-test.toml")
	resolved, err := ResolveFile(abs)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(abs), resolved)
}

func TestResolveFileRelativeExisting(t *testing.T) {
	dir := t.TempDir()
	relName := "exists.toml"
	f, err := os.Create(filepath.Join(dir, relName))
	assert.NoError(t, err)
	f.Close()

	wd, err := os.Getwd()
	assert.NoError(t, err)
	defer os.Chdir(wd)
	assert.NoError(t, os.Chdir(dir))

	resolved, err := ResolveFile(relName)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(relName), resolved)
}

func TestResolveFileMissing(t *testing.T) {
	_, err := ResolveFile("does-not-exist-anywhere.toml")
	assert.Error(t, err)
}
