package document

import "strings"

// Package document validates Brazilian tax documents: CPF for individual
// clients (PF) and CNPJ for company clients (PJ). Both are checksum
// schemes over the last two digits.

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// IsValidCPF reports whether s is a well-formed CPF. Punctuation is
// ignored; repeated-digit sequences like 111.111.111-11 are rejected.
func IsValidCPF(s string) bool {
	cpf := digitsOnly(s)
	if len(cpf) != 11 || allSame(cpf) {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(cpf[i]-'0') * (10 - i)
	}
	digit := 11 - sum%11
	if digit >= 10 {
		digit = 0
	}
	if digit != int(cpf[9]-'0') {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(cpf[i]-'0') * (11 - i)
	}
	digit = 11 - sum%11
	if digit >= 10 {
		digit = 0
	}
	return digit == int(cpf[10]-'0')
}

// IsValidCNPJ reports whether s is a well-formed CNPJ.
func IsValidCNPJ(s string) bool {
	cnpj := digitsOnly(s)
	if len(cnpj) != 14 || allSame(cnpj) {
		return false
	}

	if cnpjDigit(cnpj, 12) != int(cnpj[12]-'0') {
		return false
	}
	return cnpjDigit(cnpj, 13) == int(cnpj[13]-'0')
}

func cnpjDigit(cnpj string, size int) int {
	sum := 0
	pos := size - 7
	for i := 0; i < size; i++ {
		sum += int(cnpj[i]-'0') * pos
		pos--
		if pos < 2 {
			pos = 9
		}
	}
	if sum%11 < 2 {
		return 0
	}
	return 11 - sum%11
}
