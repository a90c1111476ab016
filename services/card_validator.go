package services

import (
	"errors"
	"strconv"
	"strings"

	"carteirinha.fgv.br/models"
	"carteirinha.fgv.br/pkg/verificationcode"

	"github.com/go-playground/validator/v10"
)

// CardServiceError é o tipo dos erros de negócio do serviço. A mensagem
// é o texto exibido ao usuário final, sempre em português e sem detalhe
// interno de infraestrutura.
type CardServiceError string

func (e CardServiceError) Error() string { return string(e) }

// Erros de validação, na ordem de precedência do formulário original.
const (
	ErrRequiredFields   CardServiceError = "Todos os campos são obrigatórios."
	ErrInvalidAge       CardServiceError = "Idade deve ser um número válido."
	ErrInvalidStartYear CardServiceError = "Ano de início deve ser um ano válido."
	ErrInvalidGender    CardServiceError = "Sexo informado é inválido."
)

// CardForm é o objeto imutável de submissão do cadastro: uma cópia dos
// valores do formulário, construída por requisição, sem estado ambiente.
// Idade e ano chegam como texto e só viram número após a validação.
type CardForm struct {
	VerificationCode string `form:"codigo_verificacao" json:"codigo_verificacao"`
	FullName         string `form:"nome_completo" json:"nome_completo" validate:"required"`
	Age              string `form:"idade" json:"idade" validate:"required"`
	Gender           string `form:"sexo" json:"sexo" validate:"required,oneof=Masculino Feminino Outro"`
	City             string `form:"cidade" json:"cidade" validate:"required"`
	CourseStartYear  string `form:"ano_inicio" json:"ano_inicio" validate:"required"`
	Course           string `form:"curso" json:"curso" validate:"required"`
}

var validate = validator.New()

// ValidateCardForm aplica as regras na ordem fixa do painel, parando na
// primeira falha para que a mensagem seja determinística:
//  1. código com 6 caracteres (apenas na política manual);
//  2. todos os campos presentes — falha agregada única;
//  3. idade numérica e >= 1;
//  4. ano de início numérico e >= 1900 (o teto de 2030 do formulário é
//     apenas orientativo e não é reforçado aqui);
//  5. sexo dentro das opções enumeradas.
func ValidateCardForm(form CardForm, manualCode bool) error {
	if manualCode && !verificationcode.IsWellFormed(form.VerificationCode) {
		return ErrCodeLength
	}

	genderInvalid := false
	if err := validate.Struct(form); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return err
		}
		for _, fieldError := range fieldErrors {
			if fieldError.Tag() == "required" {
				return ErrRequiredFields
			}
			if fieldError.Field() == "Gender" {
				genderInvalid = true
			}
		}
	}

	if age, err := parseFormInt(form.Age); err != nil || age < 1 {
		return ErrInvalidAge
	}
	if year, err := parseFormInt(form.CourseStartYear); err != nil || year < 1900 {
		return ErrInvalidStartYear
	}
	if genderInvalid {
		return ErrInvalidGender
	}
	return nil
}

// toStudentCard monta a entidade a partir de um formulário já validado.
func (f CardForm) toStudentCard(code string, photoURL *string) *models.StudentCard {
	age, _ := parseFormInt(f.Age)
	year, _ := parseFormInt(f.CourseStartYear)
	return &models.StudentCard{
		VerificationCode: code,
		FullName:         strings.TrimSpace(f.FullName),
		Age:              age,
		Gender:           f.Gender,
		City:             strings.TrimSpace(f.City),
		CourseStartYear:  year,
		Course:           strings.TrimSpace(f.Course),
		PhotoURL:         photoURL,
	}
}

func parseFormInt(value string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(value))
}
