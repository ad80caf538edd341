package geo

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
)

// SerializeIndex encodes a WardIndex to bytes using gob encoding, for
// disk-based caching when the GeoJSON source is slow to reach.
func SerializeIndex(index *WardIndex) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(index); err != nil {
		return nil, fmt.Errorf("failed to encode WardIndex: %w", err)
	}
	return buf.Bytes(), nil
}

// DeserializeIndex decodes a WardIndex previously written by SerializeIndex.
func DeserializeIndex(data []byte) (*WardIndex, error) {
	var index WardIndex
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&index); err != nil {
		return nil, fmt.Errorf("failed to decode WardIndex: %w", err)
	}
	return &index, nil
}

// SerializeIndexToFile writes a WardIndex to a file using gob encoding.
func SerializeIndexToFile(index *WardIndex, path string) error {
	data, err := SerializeIndex(index)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DeserializeIndexFromFile reads a WardIndex from a gob cache file.
func DeserializeIndexFromFile(path string) (*WardIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	return DeserializeIndex(data)
}

// LoadWardIndexCached loads the ward index, preferring a gob cache next to
// the GeoJSON file when it is newer than the source. A stale or unreadable
// cache is silently rebuilt.
func LoadWardIndexCached(path string) (*WardIndex, error) {
	cachePath := path + ".gob"
	if srcInfo, err := os.Stat(path); err == nil {
		if cacheInfo, err := os.Stat(cachePath); err == nil && cacheInfo.ModTime().After(srcInfo.ModTime()) {
			if index, err := DeserializeIndexFromFile(cachePath); err == nil {
				return index, nil
			}
		}
	}
	index, err := LoadWardIndex(path)
	if err != nil {
		return nil, err
	}
	_ = SerializeIndexToFile(index, cachePath)
	return index, nil
}
