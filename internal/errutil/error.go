package errutil

var (
	ErrHTTPRequest             = NewInternalError("http request error")
	ErrJSONDecode              = NewInternalError("json decode error")
	ErrXMLDecode               = NewInternalError("xml decode error")
	ErrTimeParse               = NewInternalError("time parse error")
	ErrGetStationNotOK         = NewInternalError("http get station list status code not ok")
	ErrGetProgramNotOK         = NewInternalError("http get program status code not ok")
	ErrDatabaseOpen            = NewInternalError("database open error")
	ErrDatabaseQuery           = NewInternalError("database query error")
	ErrDatabaseScan            = NewInternalError("database scan error")
	ErrDatabaseNotFoundArchive = NewInternalError("database not found archive")
	ErrYtdlp                   = NewInternalError("yt-dlp error")
	ErrRclone                  = NewInternalError("rclone error")
	ErrScheduler               = NewInternalError("scheduler error")
	// 分類できない系
	ErrInternal = NewInternalError("internal something error")
)
