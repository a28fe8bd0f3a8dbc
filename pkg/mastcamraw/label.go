package mastcamraw

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Label holds the metadata a PDS4 observational label provides about its
// referenced raw image file.
type Label struct {
	FileName string // referenced binary data file, relative to the label
	Offset   int64  // byte offset of the sample block within that file
	Lines    int    // image height in samples
	Samples  int    // image width in samples
}

// PDS4 labels are namespaced XML; the struct tags match on local element
// names so both namespaced and bare documents parse.
type pdsProduct struct {
	FileAreas []pdsFileArea `xml:"File_Area_Observational"`
	Arrays    []pdsArray    `xml:"Array_2D_Image"`
}

type pdsFileArea struct {
	FileName string     `xml:"File>file_name"`
	Arrays   []pdsArray `xml:"Array_2D_Image"`
}

type pdsArray struct {
	Offset int64     `xml:"offset"`
	Axes   []pdsAxis `xml:"Axis_Array"`
}

type pdsAxis struct {
	AxisName string `xml:"axis_name"`
	Elements int    `xml:"elements"`
}

// ParseLabelFile parses a PDS4 XML label from disk.
func ParseLabelFile(path string) (*Label, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening label: %w", err)
	}
	defer f.Close()
	return ParseLabel(f)
}

// ParseLabel extracts the referenced file name, byte offset, and
// Line/Sample axis sizes from a PDS4 label document.
func ParseLabel(r io.Reader) (*Label, error) {
	var product pdsProduct
	if err := xml.NewDecoder(r).Decode(&product); err != nil {
		return nil, fmt.Errorf("decoding label XML: %w", err)
	}

	label := &Label{}
	var array *pdsArray
	for i := range product.FileAreas {
		area := &product.FileAreas[i]
		if label.FileName == "" {
			label.FileName = area.FileName
		}
		if array == nil && len(area.Arrays) > 0 {
			array = &area.Arrays[0]
		}
	}
	if array == nil && len(product.Arrays) > 0 {
		array = &product.Arrays[0]
	}
	if array == nil {
		return nil, fmt.Errorf("no Array_2D_Image element found in label")
	}
	if label.FileName == "" {
		return nil, fmt.Errorf("no file_name element found in label")
	}

	label.Offset = array.Offset
	for _, axis := range array.Axes {
		switch axis.AxisName {
		case "Line":
			label.Lines = axis.Elements
		case "Sample":
			label.Samples = axis.Elements
		}
	}
	if label.Lines <= 0 || label.Samples <= 0 {
		return nil, fmt.Errorf("%w: label declares %dx%d image",
			ErrInvalidDimensions, label.Samples, label.Lines)
	}
	if label.Offset < 0 {
		return nil, fmt.Errorf("label declares negative offset %d", label.Offset)
	}
	return label, nil
}
