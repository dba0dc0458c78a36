// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"strings"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the column multiple tabs advance to.
const TabstopWidth int = 4

// Width returns the display width of text when rendering begins at the
// given column.
//
// [uniseg.StringWidth] alone cannot be used because tabs are relative to
// the current column: each tab advances to the next multiple of
// [TabstopWidth]. Everything between tabs is measured by grapheme
// cluster, so multi-rune emoji and wide CJK runes count what a terminal
// renders, not what the bytes suggest.
func Width(column int, text string) int {
	for text != "" {
		chunk := text
		tab := strings.IndexByte(text, '\t')
		if tab == -1 {
			text = ""
		} else {
			chunk, text = text[:tab], text[tab+1:]
		}

		column += uniseg.StringWidth(chunk)
		if tab != -1 {
			column += TabstopWidth - column%TabstopWidth
		}
	}
	return column
}
