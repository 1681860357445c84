/*
Copyright 2026 The PGP-Armor Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package armor implements the RFC 4880 §6 ASCII-Armor codec for OpenPGP
// packets: a tokenizer, a grammar-directed parser with backtracking
// markers, a Base64 content codec, and the CRC-24 integrity check, wired
// together behind a single Decode entry point.
//
// The package only recognizes and validates the armor envelope; it does
// not parse the OpenPGP packets carried inside the decoded payload, and it
// does not perform any I/O of its own. Callers supply an io.Reader and
// receive the decoded payload, headers, and envelope type, or the first
// fatal error encountered.
package armor
