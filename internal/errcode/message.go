package errcode

import "net/http"

// GenericMessage is returned for any code without an entry in the message table
const GenericMessage = "Ralat berlaku. Sila cuba lagi."

var codeMessageMap = map[string]string{
	// identity provider
	AuthEmailAlreadyInUse:   "E-mel ini telah didaftarkan. Sila gunakan e-mel lain.",
	AuthInvalidEmail:        "Format e-mel tidak sah.",
	AuthOperationNotAllowed: "Operasi tidak dibenarkan. Sila hubungi pentadbir.",
	AuthWeakPassword:        "Kata laluan terlalu lemah. Gunakan sekurang-kurangnya 6 aksara.",
	AuthUserDisabled:        "Akaun ini telah dilumpuhkan. Sila hubungi pentadbir.",
	AuthUserNotFound:        "E-mel tidak dijumpai. Sila daftar akaun baru.",
	AuthWrongPassword:       "Kata laluan salah. Sila cuba lagi.",
	AuthTooManyRequests:     "Terlalu banyak percubaan. Sila cuba sebentar lagi.",
	AuthNetworkFailed:       "Masalah rangkaian. Sila semak sambungan internet anda.",
	AuthInvalidCredential:   "E-mel atau kata laluan tidak sah.",
	AuthMissingPassword:     "Sila masukkan kata laluan.",
	AuthMissingEmail:        "Sila masukkan e-mel.",
	AuthInvalidToken:        "Sesi anda telah tamat. Sila log masuk semula.",
	AuthForbidden:           "Anda tidak mempunyai kebenaran untuk tindakan ini.",
	AuthPasswordMismatch:    "Kata laluan tidak sepadan.",
	AuthPasswordTooShort:    "Kata laluan mesti sekurang-kurangnya 8 aksara.",
	AuthInvalidResetToken:   "Pautan set semula kata laluan tidak sah atau telah tamat tempoh.",
	AuthMemberNotRegistered: "E-mel ini tidak didaftarkan dalam sistem ahli. Sila daftar ahli terlebih dahulu di halaman \"Daftar Ahli\".",

	// application
	DataNotFound:           "Data tidak dijumpai.",
	DataUnavailable:        "Perkhidmatan tidak tersedia buat masa ini. Sila cuba lagi.",
	ValidationFailed:       "Sila isi semua medan yang diperlukan.",
	DocumentInvalidType:    "Format fail tidak dibenarkan. Sila gunakan PDF, JPG, atau PNG.",
	DocumentTooLarge:       "Saiz fail melebihi had maksimum 5MB.",
	PostMissingFields:      "Sila lengkapkan tajuk dan kandungan",
	ConfirmationRequired:   "Tindakan ini memerlukan pengesahan.",
	RegistrationIncomplete: "Sila isi semua medan yang diperlukan.",
	DraftNotFound:          "Draf pendaftaran tidak dijumpai atau telah tamat tempoh.",
	DraftInvalidRowKind:    "Jenis jadual tidak sah.",
	ContactMissingName:     "Sila masukkan nama anda",
	ContactMissingEmail:    "Sila masukkan email anda",
	ContactInvalidEmail:    "Sila masukkan email yang sah",
	ContactMissingSubject:  "Sila masukkan subjek",
	ContactMissingMessage:  "Sila masukkan mesej anda",
	ImportInvalidFile:      "Fail import tidak sah. Sila gunakan fail Excel (.xlsx).",
}

var codeStatusMap = map[string]int{
	AuthEmailAlreadyInUse:   http.StatusConflict,
	AuthInvalidEmail:        http.StatusBadRequest,
	AuthOperationNotAllowed: http.StatusForbidden,
	AuthWeakPassword:        http.StatusBadRequest,
	AuthUserDisabled:        http.StatusForbidden,
	AuthUserNotFound:        http.StatusNotFound,
	AuthWrongPassword:       http.StatusUnauthorized,
	AuthTooManyRequests:     http.StatusTooManyRequests,
	AuthNetworkFailed:       http.StatusServiceUnavailable,
	AuthInvalidCredential:   http.StatusUnauthorized,
	AuthMissingPassword:     http.StatusBadRequest,
	AuthMissingEmail:        http.StatusBadRequest,
	AuthInvalidToken:        http.StatusUnauthorized,
	AuthForbidden:           http.StatusForbidden,
	AuthPasswordMismatch:    http.StatusBadRequest,
	AuthPasswordTooShort:    http.StatusBadRequest,
	AuthInvalidResetToken:   http.StatusBadRequest,
	AuthMemberNotRegistered: http.StatusNotFound,

	DataNotFound:           http.StatusNotFound,
	DataUnavailable:        http.StatusServiceUnavailable,
	ValidationFailed:       http.StatusBadRequest,
	DocumentInvalidType:    http.StatusBadRequest,
	DocumentTooLarge:       http.StatusRequestEntityTooLarge,
	PostMissingFields:      http.StatusBadRequest,
	ConfirmationRequired:   http.StatusPreconditionRequired,
	RegistrationIncomplete: http.StatusBadRequest,
	DraftNotFound:          http.StatusNotFound,
	DraftInvalidRowKind:    http.StatusBadRequest,
	ContactMissingName:     http.StatusBadRequest,
	ContactMissingEmail:    http.StatusBadRequest,
	ContactInvalidEmail:    http.StatusBadRequest,
	ContactMissingSubject:  http.StatusBadRequest,
	ContactMissingMessage:  http.StatusBadRequest,
	ImportInvalidFile:      http.StatusBadRequest,
}

// Message maps a code to its Malay message, falling back to GenericMessage
func Message(code string) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return GenericMessage
}
