// Copyright (c) 2026 Anselm Long. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

// Package personal persists a user's personal dictionary words.
package personal

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Store holds personal words across restarts.
type Store interface {
	// Add inserts a word into the personal dictionary.
	Add(word string) error

	// Remove deletes a word from the personal dictionary.
	Remove(word string) error

	// All returns every word stored in the personal dictionary.
	All() ([]string, error)
}

// File stores one word per line in a plain text file. Lines starting with
// '#' are treated as comments. A missing file reads as an empty dictionary.
type File struct {
	path string
}

// NewFile creates a file-backed store at path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Add appends word to the file, creating it if needed.
func (f *File) Add(word string) error {
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(file, word); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// Remove rewrites the file without word.
func (f *File) Remove(word string) error {
	words, err := f.All()
	if err != nil {
		return err
	}

	kept := words[:0]
	for _, w := range words {
		if w != word {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(words) {
		return nil
	}

	var buf bytes.Buffer
	for _, w := range kept {
		fmt.Fprintln(&buf, w)
	}
	return os.WriteFile(f.path, buf.Bytes(), 0o644)
}

// All returns the stored words, skipping blank and comment lines.
func (f *File) All() ([]string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	return words, scanner.Err()
}

const defaultRedisKey = "personal_dict"

// Redis stores personal words in a Redis set, for installs that share one
// personal dictionary across machines.
type Redis struct {
	client *redis.Client
	key    string
}

// NewRedis creates a store on client under key. An empty key uses
// "personal_dict".
func NewRedis(client *redis.Client, key string) *Redis {
	if key == "" {
		key = defaultRedisKey
	}
	return &Redis{client: client, key: key}
}

// Add inserts a word into the set.
func (r *Redis) Add(word string) error {
	return r.client.SAdd(context.Background(), r.key, word).Err()
}

// Remove deletes a word from the set.
func (r *Redis) Remove(word string) error {
	return r.client.SRem(context.Background(), r.key, word).Err()
}

// All returns all words stored in the set.
func (r *Redis) All() ([]string, error) {
	return r.client.SMembers(context.Background(), r.key).Result()
}
