// Package dictionary provides the static tag-to-metadata table the decoder
// consults for implicit-VR elements and the slice assembler consults to
// build its keyword index. Modeled on the embedded, init-time dictionary
// table pattern used elsewhere in the Go DICOM ecosystem, but built from a
// Go literal rather than a parsed CSV resource since this module's table is
// deliberately scoped to the tags the decoder and CT/MR slice assembly
// actually need, not the full DICOM standard.
package dictionary

import (
	"sync"

	"github.com/dicomscan/dicomscan/pkg/dicom/tag"
	"github.com/dicomscan/dicomscan/pkg/dicom/vr"
)

// Entry describes one dictionary-known tag.
type Entry struct {
	VR       vr.VR
	VM       string
	Name     string
	Keyword  string
	Retired  bool
}

// Dictionary is an immutable tag lookup table, safe for concurrent reads.
type Dictionary struct {
	entries map[uint32]Entry
}

// Lookup returns the entry for t, after normalizing repeating curve/overlay
// groups, or false if t is not known.
func (d *Dictionary) Lookup(t tag.Tag) (Entry, bool) {
	e, ok := d.entries[t.NormalizeRepeatingGroup().Key()]
	return e, ok
}

// New builds a Dictionary from an explicit entry set, keyed by tag. Intended
// for tests and callers who want a narrower or augmented table.
func New(entries map[tag.Tag]Entry) *Dictionary {
	d := &Dictionary{entries: make(map[uint32]Entry, len(entries))}
	for t, e := range entries {
		d.entries[t.Key()] = e
	}
	return d
}

var defaultOnce sync.Once
var defaultDict *Dictionary

// Default returns the built-in dictionary, built once and shared across all
// callers for the lifetime of the process.
func Default() *Dictionary {
	defaultOnce.Do(func() {
		defaultDict = New(builtin)
	})
	return defaultDict
}

var builtin = map[tag.Tag]Entry{
	tag.SpecificCharacterSet:    {VR: vr.CS, VM: "1-n", Name: "Specific Character Set", Keyword: "SpecificCharacterSet"},
	tag.TransferSyntaxUID:       {VR: vr.UI, VM: "1", Name: "Transfer Syntax UID", Keyword: "TransferSyntaxUID"},
	tag.SOPClassUID:             {VR: vr.UI, VM: "1", Name: "SOP Class UID", Keyword: "SOPClassUID"},
	tag.SOPInstanceUID:          {VR: vr.UI, VM: "1", Name: "SOP Instance UID", Keyword: "SOPInstanceUID"},
	tag.InstanceCreationDate:    {VR: vr.DA, VM: "1", Name: "Instance Creation Date", Keyword: "InstanceCreationDate"},
	tag.InstanceCreationTime:    {VR: vr.TM, VM: "1", Name: "Instance Creation Time", Keyword: "InstanceCreationTime"},
	tag.StudyDate:               {VR: vr.DA, VM: "1", Name: "Study Date", Keyword: "StudyDate"},
	tag.StudyTime:               {VR: vr.TM, VM: "1", Name: "Study Time", Keyword: "StudyTime"},
	tag.AccessionNumber:         {VR: vr.SH, VM: "1", Name: "Accession Number", Keyword: "AccessionNumber"},
	tag.Modality:                {VR: vr.CS, VM: "1", Name: "Modality", Keyword: "Modality"},
	tag.Manufacturer:            {VR: vr.LO, VM: "1", Name: "Manufacturer", Keyword: "Manufacturer"},
	tag.InstitutionName:         {VR: vr.LO, VM: "1", Name: "Institution Name", Keyword: "InstitutionName"},
	tag.StationName:             {VR: vr.SH, VM: "1", Name: "Station Name", Keyword: "StationName"},
	tag.StudyDescription:        {VR: vr.LO, VM: "1", Name: "Study Description", Keyword: "StudyDescription"},
	tag.SeriesDescription:       {VR: vr.LO, VM: "1", Name: "Series Description", Keyword: "SeriesDescription"},
	tag.SeriesDate:              {VR: vr.DA, VM: "1", Name: "Series Date", Keyword: "SeriesDate"},
	tag.SeriesTime:              {VR: vr.TM, VM: "1", Name: "Series Time", Keyword: "SeriesTime"},
	tag.ManufacturerModelName:   {VR: vr.LO, VM: "1", Name: "Manufacturer's Model Name", Keyword: "ManufacturerModelName"},
	tag.DeviceSerialNumber:      {VR: vr.LO, VM: "1", Name: "Device Serial Number", Keyword: "DeviceSerialNumber"},
	tag.SoftwareVersions:        {VR: vr.LO, VM: "1-n", Name: "Software Versions", Keyword: "SoftwareVersions"},
	tag.KVP:                     {VR: vr.DS, VM: "1", Name: "KVP", Keyword: "KVP"},
	tag.PatientName:             {VR: vr.PN, VM: "1", Name: "Patient's Name", Keyword: "PatientName"},
	tag.PatientID:                {VR: vr.LO, VM: "1", Name: "Patient ID", Keyword: "PatientID"},
	tag.PatientBirthDate:        {VR: vr.DA, VM: "1", Name: "Patient's Birth Date", Keyword: "PatientBirthDate"},
	tag.PatientSex:              {VR: vr.CS, VM: "1", Name: "Patient's Sex", Keyword: "PatientSex"},
	tag.PatientAge:              {VR: vr.AS, VM: "1", Name: "Patient's Age", Keyword: "PatientAge"},
	tag.PatientComments:         {VR: vr.LT, VM: "1", Name: "Patient Comments", Keyword: "PatientComments"},
	tag.ScanOptions:             {VR: vr.CS, VM: "1-n", Name: "Scan Options", Keyword: "ScanOptions"},
	tag.SliceThickness:          {VR: vr.DS, VM: "1", Name: "Slice Thickness", Keyword: "SliceThickness"},
	tag.SpacingBetweenSlices:    {VR: vr.DS, VM: "1", Name: "Spacing Between Slices", Keyword: "SpacingBetweenSlices"},
	tag.DataCollectionDiameter:  {VR: vr.DS, VM: "1", Name: "Data Collection Diameter", Keyword: "DataCollectionDiameter"},
	tag.ReconstructionDiameter:  {VR: vr.DS, VM: "1", Name: "Reconstruction Diameter", Keyword: "ReconstructionDiameter"},
	tag.ConvolutionKernel:       {VR: vr.SH, VM: "1-n", Name: "Convolution Kernel", Keyword: "ConvolutionKernel"},
	tag.TableHeight:             {VR: vr.DS, VM: "1", Name: "Table Height", Keyword: "TableHeight"},
	tag.RotationDirection:       {VR: vr.CS, VM: "1", Name: "Rotation Direction", Keyword: "RotationDirection"},
	tag.GantryDetectorTilt:      {VR: vr.DS, VM: "1", Name: "Gantry/Detector Tilt", Keyword: "GantryDetectorTilt"},
	tag.FrameOfReferenceUID:     {VR: vr.UI, VM: "1", Name: "Frame of Reference UID", Keyword: "FrameOfReferenceUID"},
	tag.PositionReferenceIndicator: {VR: vr.LO, VM: "1", Name: "Position Reference Indicator", Keyword: "PositionReferenceIndicator"},
	tag.StudyInstanceUID:        {VR: vr.UI, VM: "1", Name: "Study Instance UID", Keyword: "StudyInstanceUID"},
	tag.SeriesInstanceUID:       {VR: vr.UI, VM: "1", Name: "Series Instance UID", Keyword: "SeriesInstanceUID"},
	tag.StudyID:                 {VR: vr.SH, VM: "1", Name: "Study ID", Keyword: "StudyID"},
	tag.SeriesNumber:            {VR: vr.IS, VM: "1", Name: "Series Number", Keyword: "SeriesNumber"},
	tag.InstanceNumber:          {VR: vr.IS, VM: "1", Name: "Instance Number", Keyword: "InstanceNumber"},
	tag.ImagePositionPatient:    {VR: vr.DS, VM: "3", Name: "Image Position (Patient)", Keyword: "ImagePositionPatient"},
	tag.ImageOrientationPatient: {VR: vr.DS, VM: "6", Name: "Image Orientation (Patient)", Keyword: "ImageOrientationPatient"},
	tag.SliceLocation:           {VR: vr.DS, VM: "1", Name: "Slice Location", Keyword: "SliceLocation"},
	tag.ImageType:               {VR: vr.CS, VM: "2-n", Name: "Image Type", Keyword: "ImageType"},
	tag.SamplesPerPixel:         {VR: vr.US, VM: "1", Name: "Samples per Pixel", Keyword: "SamplesPerPixel"},
	tag.PhotometricInterpretation: {VR: vr.CS, VM: "1", Name: "Photometric Interpretation", Keyword: "PhotometricInterpretation"},
	tag.PlanarConfiguration:     {VR: vr.US, VM: "1", Name: "Planar Configuration", Keyword: "PlanarConfiguration"},
	tag.NumberOfFrames:          {VR: vr.IS, VM: "1", Name: "Number of Frames", Keyword: "NumberOfFrames"},
	tag.PlanesPerFrame:          {VR: vr.US, VM: "1", Name: "Planes per Frame", Keyword: "PlanesPerFrame"},
	tag.Rows:                    {VR: vr.US, VM: "1", Name: "Rows", Keyword: "Rows"},
	tag.Columns:                 {VR: vr.US, VM: "1", Name: "Columns", Keyword: "Columns"},
	tag.PixelSpacing:            {VR: vr.DS, VM: "2", Name: "Pixel Spacing", Keyword: "PixelSpacing"},
	tag.BitsAllocated:           {VR: vr.US, VM: "1", Name: "Bits Allocated", Keyword: "BitsAllocated"},
	tag.BitsStored:              {VR: vr.US, VM: "1", Name: "Bits Stored", Keyword: "BitsStored"},
	tag.HighBit:                 {VR: vr.US, VM: "1", Name: "High Bit", Keyword: "HighBit"},
	tag.PixelRepresentation:     {VR: vr.US, VM: "1", Name: "Pixel Representation", Keyword: "PixelRepresentation"},
	tag.SmallestImagePixelValue: {VR: vr.US, VM: "1", Name: "Smallest Image Pixel Value", Keyword: "SmallestImagePixelValue"},
	tag.LargestImagePixelValue:  {VR: vr.US, VM: "1", Name: "Largest Image Pixel Value", Keyword: "LargestImagePixelValue"},
	tag.PixelPaddingValue:       {VR: vr.US, VM: "1", Name: "Pixel Padding Value", Keyword: "PixelPaddingValue"},
	tag.WindowCenter:            {VR: vr.DS, VM: "1-n", Name: "Window Center", Keyword: "WindowCenter"},
	tag.WindowWidth:             {VR: vr.DS, VM: "1-n", Name: "Window Width", Keyword: "WindowWidth"},
	tag.RescaleIntercept:        {VR: vr.DS, VM: "1", Name: "Rescale Intercept", Keyword: "RescaleIntercept"},
	tag.RescaleSlope:            {VR: vr.DS, VM: "1", Name: "Rescale Slope", Keyword: "RescaleSlope"},
	tag.RescaleType:             {VR: vr.LO, VM: "1", Name: "Rescale Type", Keyword: "RescaleType"},
	tag.WindowCenterWidthExplanation: {VR: vr.LO, VM: "1-n", Name: "Window Center & Width Explanation", Keyword: "WindowCenterWidthExplanation"},
	tag.VOILUTFunction:          {VR: vr.CS, VM: "1", Name: "VOI LUT Function", Keyword: "VOILUTFunction"},
	tag.ContentDate:             {VR: vr.DA, VM: "1", Name: "Content Date", Keyword: "ContentDate"},
	tag.ContentTime:             {VR: vr.TM, VM: "1", Name: "Content Time", Keyword: "ContentTime"},
	tag.PixelData:               {VR: vr.OW, VM: "1", Name: "Pixel Data", Keyword: "PixelData"},
	tag.PresentationIntentType:  {VR: vr.CS, VM: "1", Name: "Presentation Intent Type", Keyword: "PresentationIntentType"},
}
