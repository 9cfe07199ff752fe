package model

import (
	"path/filepath"
	"strings"
)

// FileType represents supported file types
type FileType int

const (
	// FileTypeCSV represents CSV file type
	FileTypeCSV FileType = iota
	// FileTypeJSON represents JSON file type
	FileTypeJSON
	// FileTypeXLSX represents Excel workbook file type
	FileTypeXLSX
	// FileTypeUnsupported represents unsupported file type
	FileTypeUnsupported
)

// String returns the string representation of FileType.
func (ft FileType) String() string {
	switch ft {
	case FileTypeCSV:
		return "csv"
	case FileTypeJSON:
		return "json"
	case FileTypeXLSX:
		return "xlsx"
	default:
		return "unsupported"
	}
}

// File extensions
const (
	// ExtCSV is the CSV file extension
	ExtCSV = ".csv"
	// ExtJSON is the JSON file extension
	ExtJSON = ".json"
	// ExtXLSX is the Excel workbook file extension
	ExtXLSX = ".xlsx"
	// ExtGZ is the gzip compression extension
	ExtGZ = ".gz"
	// ExtBZ2 is the bzip2 compression extension
	ExtBZ2 = ".bz2"
	// ExtXZ is the xz compression extension
	ExtXZ = ".xz"
	// ExtZSTD is the zstd compression extension
	ExtZSTD = ".zst"
	// ExtLZ4 is the lz4 compression extension
	ExtLZ4 = ".lz4"
)

// compressionExtensions lists the compression suffixes recognised on input files.
var compressionExtensions = []string{ExtGZ, ExtBZ2, ExtXZ, ExtZSTD, ExtLZ4}

// File is an input data file identified by its path.
type File struct {
	path     string
	fileType FileType
}

// NewFile creates a new File
func NewFile(path string) *File {
	return &File{
		path:     path,
		fileType: detectFileType(path),
	}
}

// Path returns file path
func (f *File) Path() string {
	return f.path
}

// Type returns file type
func (f *File) Type() FileType {
	return f.fileType
}

// IsSupported reports whether the file type is known
func (f *File) IsSupported() bool {
	return f.fileType != FileTypeUnsupported
}

// CompressionExtension returns the compression suffix of the path, or ""
func (f *File) CompressionExtension() string {
	lower := strings.ToLower(f.path)
	for _, ext := range compressionExtensions {
		if strings.HasSuffix(lower, ext) {
			return ext
		}
	}
	return ""
}

// IsCompressed returns true if file is compressed
func (f *File) IsCompressed() bool {
	return f.CompressionExtension() != ""
}

// detectFileType detects file type from extension, considering compressed files
func detectFileType(path string) FileType {
	basePath := path
	lower := strings.ToLower(path)
	for _, ext := range compressionExtensions {
		if strings.HasSuffix(lower, ext) {
			basePath = path[:len(path)-len(ext)]
			break
		}
	}

	switch strings.ToLower(filepath.Ext(basePath)) {
	case ExtCSV:
		return FileTypeCSV
	case ExtJSON:
		return FileTypeJSON
	case ExtXLSX:
		return FileTypeXLSX
	default:
		return FileTypeUnsupported
	}
}
