package main

// sampleFileName is the default path for --sample output.
const sampleFileName = "sample.md"

// sampleMarkdown exercises every supported construct: front matter,
// headings, emphasis, lists, tables with captions, images with
// modifiers, cross-reference placeholders, and code blocks.
const sampleMarkdown = `---
title: Sample Document
author: Jane Doe
affiliation: Example University
---

# Introduction

This is a **sample** document with *emphasis*, ` + "`inline code`" + `,
and a cross-reference to {ref: results-table}.

## Lists

- First point
- Second point
  - Nested detail
1. Ordered step
2. Another step

## Data

| Metric | Value |
| ------ | ----- |
| {"caption": "Benchmark results", "ref": "results-table"} | |
| Latency | 12ms |
| Throughput | 840/s |

## Figures

![{"scale": 0.5, "ref": "arch-figure"}](architecture.png "System architecture")

As shown in {ref: arch-figure}, components communicate over a queue.

## Code

` + "```go" + `
func main() {
	fmt.Println("hello")
}
` + "```" + `
`
