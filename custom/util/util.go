package util

func GetStringPtr(s string) *string {
	return &s
}
