// Package step defines the normalized test-step record the synthesis
// pipeline consumes. A Step is produced once by an upstream natural-language
// extraction stage, handed to the core, and never mutated: template families
// read its actions, equipment tags, parameter targets, and register addresses
// to decide which code sections exist and which values get baked into the
// generated artifacts.
package step
