// Copyright (c) 2026 Anselm Long. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package autocorrect

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/anselmlong/autocorrect/personal"
	"github.com/edsrzf/mmap-go"
	"github.com/mitchellh/mapstructure"
	"github.com/tidwall/gjson"
)

// personalWordFrequency is assigned to words from a personal dictionary so
// they outrank most corpus words.
const personalWordFrequency = 1000000

// LoadDictionaryFile reads a word list from path and adds every entry to the
// dictionary. Each line holds a lowercase word optionally followed by its
// frequency; words without a frequency default to 1. Blank lines and lines
// starting with '#' are skipped. Returns the number of words loaded.
//
// The file is memory-mapped rather than read into the heap, as word lists
// can run to hundreds of megabytes.
func (s *Spell) LoadDictionaryFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	if info.Size() == 0 {
		return 0, nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return 0, fmt.Errorf("mmap %s: %w", path, err)
	}
	defer data.Unmap()

	count := 0
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		word := strings.ToLower(fields[0])

		frequency := 1
		if len(fields) > 1 {
			if v, err := strconv.Atoi(fields[1]); err == nil && v >= 0 {
				frequency = v
			}
		}

		if _, err := s.AddEntry(Entry{
			Word:     word,
			WordData: WordData{"frequency": frequency},
		}); err != nil {
			return count, err
		}
		count++
	}

	return count, scanner.Err()
}

// LoadPersonal inserts every word held by store into the dictionary at the
// personal word frequency. Returns the number of words loaded.
func (s *Spell) LoadPersonal(store personal.Store) (int, error) {
	words, err := store.All()
	if err != nil {
		return 0, err
	}

	for _, word := range words {
		if _, err := s.AddEntry(Entry{
			Word:     strings.ToLower(word),
			WordData: WordData{"frequency": personalWordFrequency},
		}); err != nil {
			return 0, err
		}
	}

	return len(words), nil
}

// AddPersonalWord persists word in store and makes it available to lookups
// immediately.
func (s *Spell) AddPersonalWord(store personal.Store, word string) error {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return errors.New("word must not be empty")
	}

	if err := store.Add(word); err != nil {
		return err
	}

	_, err := s.AddEntry(Entry{
		Word:     word,
		WordData: WordData{"frequency": personalWordFrequency},
	})
	return err
}

// RemovePersonalWord removes word from store. The in-memory index keeps the
// word until the dictionary is next rebuilt; the index is only ever rebuilt
// wholesale.
func (s *Spell) RemovePersonalWord(store personal.Store, word string) error {
	return store.Remove(strings.ToLower(strings.TrimSpace(word)))
}

// Save a representation of spell to disk at filename
func (s *Spell) Save(filename string) error {
	s.words.RLock()
	s.deletes.RLock()
	jsonStr, err := json.Marshal(map[string]interface{}{
		"deletes": s.deletes.data,
		"options": map[string]interface{}{
			"editDistance": s.MaxEditDistance,
		},
		"words": s.words.data,
	})
	s.deletes.RUnlock()
	s.words.RUnlock()
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := gzip.NewWriter(f)
	if _, err := w.Write(jsonStr); err != nil {
		w.Close()
		return err
	}

	if err := w.Close(); err != nil {
		return err
	}

	return f.Close()
}

type dumpOptions struct {
	EditDistance int `mapstructure:"editDistance"`
}

// Load a dictionary from disk from filename. Returns a new Spell instance on
// success, or will return an error if there's a problem reading the file.
func Load(filename string) (*Spell, error) {
	s := New()

	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(gz)
	if err != nil {
		gz.Close()
		return nil, err
	}

	if err := gz.Close(); err != nil {
		return nil, err
	}

	gj := gjson.ParseBytes(data)

	// Load the words
	gj.Get("words").ForEach(func(key, value gjson.Result) bool {
		s.words.store(key.String(), value.Value().(map[string]interface{}))
		return true
	})

	// Load the deletes
	deletes := make(map[uint32][]string)
	if err := json.Unmarshal([]byte(gj.Get("deletes").String()), &deletes); err != nil {
		return nil, err
	}

	s.deletes.Lock()
	s.deletes.data = deletes
	s.deletes.Unlock()

	var opts dumpOptions
	if err := mapstructure.Decode(gj.Get("options").Value(), &opts); err != nil {
		return nil, err
	}
	if opts.EditDistance > 0 {
		s.MaxEditDistance = opts.EditDistance
	}

	return s, nil
}
