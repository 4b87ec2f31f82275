// Package qoi provides a pure Go encoder and decoder for the QOI
// ("Quite OK Image") lossless image format.
//
// QOI is a byte-oriented format with a one-byte tag per chunk and a fixed
// 64-entry color dictionary, designed for fast lossless compression of
// RGB and RGBA images. This package implements the full format on top of
// a pair of streaming state machines that work through fixed-size byte
// windows. The exported functions hold the complete encoded stream and
// the complete pixel data in memory.
//
// Basic usage for decoding:
//
//	img, err := qoi.Decode(reader)
//
// Basic usage for encoding:
//
//	err := qoi.Encode(writer, img, nil)
//
// Callers that already hold packed pixel data can skip the image.Image
// bridge with [DecodeBytes] and [EncodeBytes].
package qoi
