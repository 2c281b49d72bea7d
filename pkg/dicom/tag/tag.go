// Package tag defines DICOM data element tags.
package tag

// Tag identifies a DICOM data element by its group and element numbers.
type Tag struct {
	Group   uint16
	Element uint16
}

// New creates a Tag from its group and element numbers.
func New(group, element uint16) Tag {
	return Tag{Group: group, Element: element}
}

// Key packs the tag into the 32-bit form used as a dictionary lookup key.
// The element occupies the high 16 bits and the group the low 16 bits; this
// ordering is load-bearing for dictionary compatibility and must not be
// flipped to the more common group-high packing.
func (t Tag) Key() uint32 {
	return (uint32(t.Element) << 16) | uint32(t.Group)
}

// Equals compares two tags.
func (t Tag) Equals(other Tag) bool {
	return t.Group == other.Group && t.Element == other.Element
}

// IsPrivate reports whether this is a private tag (odd group number).
func (t Tag) IsPrivate() bool {
	return t.Group%2 == 1
}

// IsGroup0002 reports whether this tag belongs to the File Meta Information group.
func (t Tag) IsGroup0002() bool {
	return t.Group == 0x0002
}

// IsPrivateCreator reports whether this private-group tag's element falls in
// the private-creator data-element range [0x0010, 0x00FF).
func (t Tag) IsPrivateCreator() bool {
	return t.Group > 0x0008 && t.IsPrivate() && t.Element >= 0x0010 && t.Element < 0x00FF
}

// NormalizeRepeatingGroup folds curve-data groups (50xx) and overlay-data
// groups (60xx) down to their canonical 5000/6000 form for dictionary
// lookup, per DICOM's repeating-group mechanism.
func (t Tag) NormalizeRepeatingGroup() Tag {
	switch t.Group & 0xFF00 {
	case 0x5000:
		return Tag{Group: 0x5000, Element: t.Element}
	case 0x6000:
		return Tag{Group: 0x6000, Element: t.Element}
	default:
		return t
	}
}

// Special tags that are always implicit-VR regardless of transfer syntax.
var (
	Item                     = Tag{0xFFFE, 0xE000}
	ItemDelimitationItem     = Tag{0xFFFE, 0xE00D}
	SequenceDelimitationItem = Tag{0xFFFE, 0xE0DD}
)

// File Meta Information (Group 0002), plus Specific Character Set (0008,0005).
var (
	FileMetaInformationGroupLength = Tag{0x0002, 0x0000}
	FileMetaInformationVersion     = Tag{0x0002, 0x0001}
	MediaStorageSOPClassUID        = Tag{0x0002, 0x0002}
	MediaStorageSOPInstanceUID     = Tag{0x0002, 0x0003}
	TransferSyntaxUID              = Tag{0x0002, 0x0010}
	ImplementationClassUID         = Tag{0x0002, 0x0012}
	ImplementationVersionName      = Tag{0x0002, 0x0013}
	SpecificCharacterSet           = Tag{0x0008, 0x0005}
)

// Patient Module.
var (
	PatientName      = Tag{0x0010, 0x0010}
	PatientID        = Tag{0x0010, 0x0020}
	PatientBirthDate = Tag{0x0010, 0x0030}
	PatientSex       = Tag{0x0010, 0x0040}
	PatientAge       = Tag{0x0010, 0x1010}
	PatientComments  = Tag{0x0010, 0x4000}
)

// General Study Module.
var (
	StudyDate        = Tag{0x0008, 0x0020}
	StudyTime        = Tag{0x0008, 0x0030}
	AccessionNumber  = Tag{0x0008, 0x0050}
	StudyDescription = Tag{0x0008, 0x1030}
	StudyInstanceUID = Tag{0x0020, 0x000D}
	StudyID          = Tag{0x0020, 0x0010}
)

// General Series Module.
var (
	Modality               = Tag{0x0008, 0x0060}
	SeriesInstanceUID      = Tag{0x0020, 0x000E}
	SeriesNumber           = Tag{0x0020, 0x0011}
	InstanceNumber         = Tag{0x0020, 0x0013}
	SeriesDescription      = Tag{0x0008, 0x103E}
	SeriesDate             = Tag{0x0008, 0x0021}
	SeriesTime             = Tag{0x0008, 0x0031}
	PresentationIntentType = Tag{0x0008, 0x0068}
)

// General Equipment Module.
var (
	Manufacturer          = Tag{0x0008, 0x0070}
	InstitutionName       = Tag{0x0008, 0x0080}
	StationName           = Tag{0x0008, 0x1010}
	ManufacturerModelName = Tag{0x0008, 0x1090}
	DeviceSerialNumber    = Tag{0x0018, 0x1000}
	SoftwareVersions      = Tag{0x0018, 0x1020}
)

// SOP Common Module.
var (
	SOPClassUID          = Tag{0x0008, 0x0016}
	SOPInstanceUID       = Tag{0x0008, 0x0018}
	InstanceCreationDate = Tag{0x0008, 0x0012}
	InstanceCreationTime = Tag{0x0008, 0x0013}
)

// Frame of Reference Module.
var (
	FrameOfReferenceUID        = Tag{0x0020, 0x0052}
	PositionReferenceIndicator = Tag{0x0020, 0x1040}
)

// Image Pixel Module.
var (
	SamplesPerPixel           = Tag{0x0028, 0x0002}
	PhotometricInterpretation = Tag{0x0028, 0x0004}
	PlanarConfiguration       = Tag{0x0028, 0x0006}
	Rows                      = Tag{0x0028, 0x0010}
	Columns                   = Tag{0x0028, 0x0011}
	BitsAllocated             = Tag{0x0028, 0x0100}
	BitsStored                = Tag{0x0028, 0x0101}
	HighBit                   = Tag{0x0028, 0x0102}
	PixelRepresentation       = Tag{0x0028, 0x0103}
	PixelData                 = Tag{0x7FE0, 0x0010}
	NumberOfFrames            = Tag{0x0028, 0x0008}
	PlanesPerFrame            = Tag{0x0028, 0x0012}
	SmallestImagePixelValue   = Tag{0x0028, 0x0106}
	LargestImagePixelValue    = Tag{0x0028, 0x0107}
	PixelPaddingValue         = Tag{0x0028, 0x0120}
)

// CT Image Module.
var (
	ImageType                    = Tag{0x0008, 0x0008}
	RescaleIntercept             = Tag{0x0028, 0x1052}
	RescaleSlope                 = Tag{0x0028, 0x1053}
	RescaleType                  = Tag{0x0028, 0x1054}
	WindowCenter                 = Tag{0x0028, 0x1050}
	WindowWidth                  = Tag{0x0028, 0x1051}
	WindowCenterWidthExplanation = Tag{0x0028, 0x1055}
	VOILUTFunction               = Tag{0x0028, 0x1056}
)

// Image Position/Orientation.
var (
	ImagePositionPatient    = Tag{0x0020, 0x0032}
	ImageOrientationPatient = Tag{0x0020, 0x0037}
	SliceThickness          = Tag{0x0018, 0x0050}
	SpacingBetweenSlices    = Tag{0x0018, 0x0088}
	PixelSpacing            = Tag{0x0028, 0x0030}
	SliceLocation           = Tag{0x0020, 0x1041}
)

// Content Date/Time.
var (
	ContentDate = Tag{0x0008, 0x0023}
	ContentTime = Tag{0x0008, 0x0033}
)

// CT Acquisition Parameters.
var (
	ScanOptions            = Tag{0x0018, 0x0022}
	DataCollectionDiameter = Tag{0x0018, 0x0090}
	ReconstructionDiameter = Tag{0x0018, 0x1100}
	ConvolutionKernel      = Tag{0x0018, 0x1210}
	ExposureTime           = Tag{0x0018, 0x1150}
	XRayTubeCurrent        = Tag{0x0018, 0x1151}
	Exposure               = Tag{0x0018, 0x1152}
	FilterType             = Tag{0x0018, 0x1160}
	GeneratorPower         = Tag{0x0018, 0x1170}
	FocalSpots             = Tag{0x0018, 0x1190}
	TableHeight            = Tag{0x0018, 0x1130}
	RotationDirection      = Tag{0x0018, 0x1140}
	GantryDetectorTilt     = Tag{0x0018, 0x1120}
	KVP                    = Tag{0x0018, 0x0060}
	DateOfLastCalibration  = Tag{0x0018, 0x1200}
	TimeOfLastCalibration  = Tag{0x0018, 0x1201}
)

// LookupName returns a human-readable name for a handful of tags that are
// useful in log output even before a dictionary lookup has happened; full
// keyword resolution goes through the dictionary package instead.
func (t Tag) LookupName() string {
	switch t {
	case PatientName:
		return "PatientName"
	case PatientID:
		return "PatientID"
	case Rows:
		return "Rows"
	case Columns:
		return "Columns"
	case BitsAllocated:
		return "BitsAllocated"
	case PixelData:
		return "PixelData"
	case TransferSyntaxUID:
		return "TransferSyntaxUID"
	case SOPClassUID:
		return "SOPClassUID"
	case Modality:
		return "Modality"
	case NumberOfFrames:
		return "NumberOfFrames"
	default:
		return ""
	}
}
