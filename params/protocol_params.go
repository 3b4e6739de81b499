// Copyright 2018 The go-aurora Authors
// This file is part of the go-aurora library.
//
// The go-aurora library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-aurora library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-aurora library. If not, see <http://www.gnu.org/licenses/>.

package params

const (
	DefaultDigestBits  = 256              // Digest size used when none is configured.
	DefaultListenAddr  = "127.0.0.1:8646" // Listen address of the HTTP digest service.
	DefaultMaxBodySize = 32 << 20         // Largest request body hashed by the HTTP service.
	BenchIterations    = 1000             // Iterations per size for the bench command.
	MetricsRefresh     = 3                // Seconds between process metric samples.
)
