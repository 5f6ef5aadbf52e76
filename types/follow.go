package types

// TargetKind 关注对象类型
type TargetKind int

const (
	KindPerson TargetKind = iota + 1
	KindOrganisation
	KindFunctionTag
)

func (k TargetKind) String() string {
	switch k {
	case KindPerson:
		return "person"
	case KindOrganisation:
		return "organisation"
	case KindFunctionTag:
		return "function_tag"
	default:
		return "unknown"
	}
}

// Param is the query parameter that selects this kind.
func (k TargetKind) Param() string {
	switch k {
	case KindPerson:
		return ParamName
	case KindOrganisation:
		return ParamOrganisationID
	case KindFunctionTag:
		return ParamFunctionTag
	default:
		return ""
	}
}

const (
	ParamName           = "name"
	ParamOrganisationID = "organisation_id"
	ParamFunctionTag    = "function_tag"
	ParamVerify         = "verify"
)

// FollowTarget is the resolved subject of a follow action.
type FollowTarget struct {
	Kind           TargetKind `json:"kind"`
	RawInput       string     `json:"raw_input"`
	CanonicalLabel string     `json:"canonical_label"`
	CanonicalID    string     `json:"canonical_id"`
	Verified       bool       `json:"verified"`
}

// TargetQuery 关注对象查询参数
type TargetQuery struct {
	Name           string `form:"name"`
	OrganisationID string `form:"organisation_id"`
	FunctionTag    string `form:"function_tag"`
	Verify         string `form:"verify"`
}

// QRCodeReq 二维码请求参数
type QRCodeReq struct {
	TargetQuery
	Size  string `form:"size"`
	Frame string `form:"frame"`
}

// RenderOptions is the validated size/frame pair of a QRCodeReq.
type RenderOptions struct {
	Size  int
	Frame bool
}

// RenderRequest drives one image render.
type RenderRequest struct {
	URL   string
	Size  int
	Frame bool
	Label string
}

// DirectoryMatch is one normalized record returned by the directory search.
type DirectoryMatch struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Name      string `json:"name,omitempty"`
	Tag       string `json:"tag,omitempty"`
}
