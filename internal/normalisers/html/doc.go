// Package html provides a Normaliser implementation for word-processor HTML exports.
// It flattens the markup into an ordered sequence of paragraphs, each carrying
// its text and the exported question images found inside the block, including
// images that only appear inside conditional comments.
package html
