package log

import (
	"log"

	"github.com/koykov/shufflebag"
)

// Writer is Log implementation of shufflebag.MetricsWriter.
//
// Don't use in production. Only for debug purposes.
type Writer struct {
	name string
}

var _ shufflebag.MetricsWriter = (*Writer)(nil)

func NewWriter(name string) *Writer {
	return &Writer{name: name}
}

func (w Writer) BagPush(priority float64) {
	log.Printf("bag %s: new item come to the bag with priority %f\n", w.name, priority)
}

func (w Writer) BagPop() {
	log.Printf("bag %s: item leave the bag\n", w.name)
}

func (w Writer) BagMiss() {
	log.Printf("bag %s: pop from empty bag\n", w.name)
}
