package decode

import (
	"github.com/dicomscan/dicomscan/pkg/dicom/dicomerr"
	"github.com/dicomscan/dicomscan/pkg/dicom/element"
	"github.com/dicomscan/dicomscan/pkg/dicom/tag"
)

// decodeSequence reads a run of (FFFE,E000) items, each wrapping a nested
// dataset, terminated either by the outer length or — for an undefined-length
// sequence — by a (FFFE,E0DD) sequence delimiter. Nesting uses direct Go
// recursion: realistic DICOM sequence depth is shallow, and an
// adversarial-input hardening pass could swap in an explicit work stack
// without touching any exported type.
func (d *decoder) decodeSequence(length uint32) ([]element.Dataset, error) {
	var items []element.Dataset

	if length == undefinedLength {
		for {
			t, itemLen, isSeqDelim, err := d.readItemHeader()
			if err != nil {
				return items, err
			}
			if isSeqDelim {
				return items, nil
			}
			item, err := d.decodeItem(itemLen)
			if err != nil {
				return items, err
			}
			_ = t
			items = append(items, item)
		}
	}

	end := d.cur.off + int(length)
	for d.cur.off < end {
		_, itemLen, isSeqDelim, err := d.readItemHeader()
		if err != nil {
			return items, err
		}
		if isSeqDelim {
			break
		}
		item, err := d.decodeItem(itemLen)
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}

// readItemHeader reads one item or sequence-delimiter frame: group, element,
// and a 4-byte length (ignored and expected zero for the delimiter).
func (d *decoder) readItemHeader() (tag.Tag, uint32, bool, error) {
	group, err := d.cur.u16()
	if err != nil {
		return tag.Tag{}, 0, false, err
	}
	elem, err := d.cur.u16()
	if err != nil {
		return tag.Tag{}, 0, false, err
	}
	t := tag.Tag{Group: group, Element: elem}
	length, err := d.cur.u32()
	if err != nil {
		return t, 0, false, err
	}
	if t.Equals(tag.SequenceDelimitationItem) {
		return t, length, true, nil
	}
	if !t.Equals(tag.Item) {
		return t, length, false, dicomerr.ForTag(dicomerr.ErrUnexpectedTag, group, elem)
	}
	return t, length, false, nil
}

// decodeItem decodes one sequence item's nested dataset, either within its
// declared length or — if undefined — up to the (FFFE,E00D) item delimiter
// that decodeDataset already recognizes as a stop condition.
func (d *decoder) decodeItem(itemLen uint32) (element.Dataset, error) {
	if itemLen == undefinedLength {
		return d.decodeDataset(len(d.cur.data))
	}
	end := d.cur.off + int(itemLen)
	return d.decodeDataset(end)
}
