package entity

import (
	"fmt"
	"strings"
)

type Name string

const (
	Companies      Name = "KHTN"
	CareActivities Name = "CSKH"
	Goods          Name = "DMHH"
	Staff          Name = "DSNV"
	Quotes         Name = "PO"
)

// Company / lead fields.
const (
	CompanyID       = "ID_CTY"
	CompanyName     = "TEN_CONG_TY"
	CompanyFounded  = "NGAY_THANH_LAP"
	CompanyContact  = "NGUOI_LIEN_HE"
	CompanyBirthday = "SINH_NHAT"
	CompanyPhone    = "SO_DIEN_THOAI"
	CompanyAddress  = "DIA_CHI"
	CompanyStatus   = "TRANG_THAI"
)

// Care activity fields.
const (
	CareID       = "ID KH_CSKH"
	CareCompany  = "ID_CTY"
	CareType     = "LOAI_CHAM_SOC"
	CarePlanned  = "NGAY_DU_KIEN"
	CareActual   = "NGAY_THUC_TE"
	CareDue      = "HAN_CHOT"
	CareStatus   = "TRANG_THAI"
	CareStaff    = "NGUOI_PHU_TRACH"
	CareImage    = "HINH_ANH"
	CareContents = "NOI_DUNG"
)

// Goods catalog fields.
const (
	GoodsCode     = "Ma_HHDV"
	GoodsName     = "Ten_HHDV"
	GoodsCategory = "Phan_loai"
	GoodsUnit     = "DVT"
	GoodsBuyPrice = "Gia_mua"
	GoodsPrice    = "Gia_ban"
	GoodsImage    = "Hinh_anh"
	GoodsNote     = "Ghi_chu"
)

// Staff fields.
const (
	StaffID       = "ID_NV"
	StaffName     = "HO_TEN"
	StaffPosition = "CHUC_VU"
	StaffPhone    = "SO_DIEN_THOAI"
	StaffEmail    = "EMAIL"
)

// Quote fields.
const (
	QuoteID        = "ID_BBGTH"
	QuoteCompany   = "ID_CTY"
	QuoteDate      = "NGAY_BAO_GIA"
	QuoteValidTill = "NGAY_HIEU_LUC"
	QuoteSubtotal  = "TONG_TIEN"
	QuoteVAT       = "THUE_VAT"
	QuoteTotal     = "TONG_THANH_TOAN"
	QuoteStatus    = "TRANG_THAI"
	QuoteNote      = "GHI_CHU"
)

const (
	CareStatusPlanned   = "Kế hoạch"
	CareStatusCompleted = "Hoàn thành"

	CompanyStatusLead = "Tiềm năng"
	QuoteStatusDraft  = "Nháp"

	// UnknownDisplay is shown for a foreign key that resolves to no loaded record.
	UnknownDisplay = "Không xác định"

	// FilterAll disables the categorical filter.
	FilterAll = "ALL"
)

type FieldKind uint8

const (
	KindText FieldKind = iota
	KindNumber
	KindDate
	KindImage
	KindRef
)

type Field struct {
	Name       string
	Label      string
	Kind       FieldKind
	Ref        Name
	Required   bool
	Searchable bool
}

type Schema struct {
	Name  Name
	Title string
	Key   string
	// IDPrefix is set for entities whose key is generated as PREFIX+YYMMDD+NNN.
	IDPrefix      string
	DisplayField  string
	FilterField   string
	CategoryField string
	ImageField    string
	Defaults      map[string]string
	Fields        []Field
}

func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

func (s Schema) FieldsOfKind(kind FieldKind) []Field {
	fields := make([]Field, 0)

	for _, f := range s.Fields {
		if f.Kind == kind {
			fields = append(fields, f)
		}
	}

	return fields
}

func (s Schema) RequiredFields() []Field {
	fields := make([]Field, 0)

	for _, f := range s.Fields {
		if f.Required {
			fields = append(fields, f)
		}
	}

	return fields
}

func (s Schema) SearchFields() []Field {
	fields := make([]Field, 0)

	for _, f := range s.Fields {
		if f.Searchable {
			fields = append(fields, f)
		}
	}

	return fields
}

// Refs lists the entities this schema points to through foreign keys.
func (s Schema) Refs() []Name {
	seen := make(map[Name]bool)
	refs := make([]Name, 0)

	for _, f := range s.FieldsOfKind(KindRef) {
		if !seen[f.Ref] {
			seen[f.Ref] = true
			refs = append(refs, f.Ref)
		}
	}

	return refs
}

var schemas = map[Name]Schema{
	Companies: {
		Name:         Companies,
		Title:        "Khách hàng tiềm năng",
		Key:          CompanyID,
		IDPrefix:     "KH",
		DisplayField: CompanyName,
		FilterField:  CompanyStatus,
		Defaults:     map[string]string{CompanyStatus: CompanyStatusLead},
		Fields: []Field{
			{Name: CompanyID, Label: "Mã công ty", Required: true, Searchable: true},
			{Name: CompanyName, Label: "Tên công ty", Required: true, Searchable: true},
			{Name: CompanyFounded, Label: "Ngày thành lập", Kind: KindDate},
			{Name: CompanyContact, Label: "Người liên hệ", Searchable: true},
			{Name: CompanyBirthday, Label: "Sinh nhật người liên hệ", Kind: KindDate},
			{Name: CompanyPhone, Label: "Số điện thoại", Searchable: true},
			{Name: CompanyAddress, Label: "Địa chỉ", Searchable: true},
			{Name: CompanyStatus, Label: "Trạng thái", Searchable: true},
		},
	},
	CareActivities: {
		Name:         CareActivities,
		Title:        "Chăm sóc khách hàng",
		Key:          CareID,
		IDPrefix:     "CS",
		DisplayField: CareType,
		FilterField:  CareStatus,
		ImageField:   CareImage,
		Defaults:     map[string]string{CareStatus: CareStatusPlanned},
		Fields: []Field{
			{Name: CareID, Label: "Mã chăm sóc", Required: true, Searchable: true},
			{Name: CareCompany, Label: "Công ty", Kind: KindRef, Ref: Companies, Required: true, Searchable: true},
			{Name: CareType, Label: "Loại chăm sóc", Required: true, Searchable: true},
			{Name: CarePlanned, Label: "Ngày dự kiến", Kind: KindDate, Required: true},
			{Name: CareActual, Label: "Ngày thực tế", Kind: KindDate},
			{Name: CareDue, Label: "Hạn chót", Kind: KindDate},
			{Name: CareStatus, Label: "Trạng thái", Searchable: true},
			{Name: CareStaff, Label: "Người phụ trách", Kind: KindRef, Ref: Staff, Searchable: true},
			{Name: CareImage, Label: "Hình ảnh", Kind: KindImage},
			{Name: CareContents, Label: "Nội dung", Searchable: true},
		},
	},
	Goods: {
		Name:          Goods,
		Title:         "Danh mục hàng hóa",
		Key:           GoodsCode,
		DisplayField:  GoodsName,
		FilterField:   GoodsCategory,
		CategoryField: GoodsCategory,
		ImageField:    GoodsImage,
		Fields: []Field{
			{Name: GoodsCode, Label: "Mã hàng hóa", Required: true, Searchable: true},
			{Name: GoodsName, Label: "Tên hàng hóa", Required: true, Searchable: true},
			{Name: GoodsCategory, Label: "Phân loại", Required: true, Searchable: true},
			{Name: GoodsUnit, Label: "Đơn vị tính"},
			{Name: GoodsBuyPrice, Label: "Giá mua", Kind: KindNumber},
			{Name: GoodsPrice, Label: "Giá bán", Kind: KindNumber},
			{Name: GoodsImage, Label: "Hình ảnh", Kind: KindImage},
			{Name: GoodsNote, Label: "Ghi chú", Searchable: true},
		},
	},
	Staff: {
		Name:         Staff,
		Title:        "Danh sách nhân viên",
		Key:          StaffID,
		IDPrefix:     "NV",
		DisplayField: StaffName,
		FilterField:  StaffPosition,
		Fields: []Field{
			{Name: StaffID, Label: "Mã nhân viên", Required: true, Searchable: true},
			{Name: StaffName, Label: "Họ tên", Required: true, Searchable: true},
			{Name: StaffPosition, Label: "Chức vụ", Searchable: true},
			{Name: StaffPhone, Label: "Số điện thoại", Searchable: true},
			{Name: StaffEmail, Label: "Email", Searchable: true},
		},
	},
	Quotes: {
		Name:         Quotes,
		Title:        "Báo giá",
		Key:          QuoteID,
		IDPrefix:     "BG",
		DisplayField: QuoteID,
		FilterField:  QuoteStatus,
		Defaults:     map[string]string{QuoteStatus: QuoteStatusDraft},
		Fields: []Field{
			{Name: QuoteID, Label: "Mã báo giá", Required: true, Searchable: true},
			{Name: QuoteCompany, Label: "Công ty", Kind: KindRef, Ref: Companies, Required: true, Searchable: true},
			{Name: QuoteDate, Label: "Ngày báo giá", Kind: KindDate, Required: true},
			{Name: QuoteValidTill, Label: "Ngày hiệu lực", Kind: KindDate},
			{Name: QuoteSubtotal, Label: "Tổng tiền", Kind: KindNumber},
			{Name: QuoteVAT, Label: "Thuế VAT", Kind: KindNumber},
			{Name: QuoteTotal, Label: "Tổng thanh toán", Kind: KindNumber},
			{Name: QuoteStatus, Label: "Trạng thái", Searchable: true},
			{Name: QuoteNote, Label: "Ghi chú", Searchable: true},
		},
	},
}

func SchemaByName(name string) (Schema, error) {
	s, ok := schemas[Name(strings.ToUpper(strings.TrimSpace(name)))]
	if !ok {
		return Schema{}, fmt.Errorf("%w: %q", ErrUnknownEntity, name)
	}

	return s, nil
}

func MustSchema(name Name) Schema {
	s, err := SchemaByName(string(name))
	if err != nil {
		panic(err)
	}

	return s
}
