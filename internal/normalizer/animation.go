package normalizer

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image/gif"
	"io"
	"os"
)

// probeAnimation reports whether the image at path holds more than one
// frame. This is a semantic check on the container structure; a supported
// still-image extension can still carry an animation.
func probeAnimation(path, ext string) (bool, error) {
	switch ext {
	case "gif":
		return probeGIF(path)
	case "webp":
		return probeWebP(path)
	case "png":
		return probeAPNG(path)
	default:
		return false, nil
	}
}

func probeGIF(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer func() {
		_ = file.Close()
	}()

	img, err := gif.DecodeAll(file)
	if err != nil {
		return false, err
	}
	return len(img.Image) > 1, nil
}

// probeWebP checks the extended-container animation flag. Simple lossy or
// lossless containers cannot hold more than one frame.
func probeWebP(path string) (bool, error) {
	header := make([]byte, 21)
	if err := readHeader(path, header); err != nil {
		return false, err
	}
	if !bytes.Equal(header[0:4], []byte("RIFF")) || !bytes.Equal(header[8:12], []byte("WEBP")) {
		return false, errors.New("not a webp container")
	}
	if !bytes.Equal(header[12:16], []byte("VP8X")) {
		return false, nil
	}
	const animationFlag = 0x02
	return header[20]&animationFlag != 0, nil
}

// probeAPNG scans chunk headers for an animation control chunk ahead of the
// image data.
func probeAPNG(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer func() {
		_ = file.Close()
	}()

	signature := make([]byte, 8)
	if _, err := io.ReadFull(file, signature); err != nil {
		return false, err
	}
	if !bytes.Equal(signature, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}) {
		return false, errors.New("not a png")
	}

	chunkHeader := make([]byte, 8)
	for {
		if _, err := io.ReadFull(file, chunkHeader); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return false, nil
			}
			return false, err
		}
		length := binary.BigEndian.Uint32(chunkHeader[0:4])
		chunkType := string(chunkHeader[4:8])

		switch chunkType {
		case "acTL":
			return true, nil
		case "IDAT", "IEND":
			return false, nil
		}

		// Skip chunk payload and CRC.
		if _, err := file.Seek(int64(length)+4, io.SeekCurrent); err != nil {
			return false, err
		}
	}
}

func readHeader(path string, buf []byte) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	_, err = io.ReadFull(file, buf)
	return err
}
