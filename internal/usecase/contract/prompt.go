package contract

import (
	"fmt"
	"strings"

	"github.com/draftforge/contract-backend/internal/entity"
)

const systemPrompt = "You are a transactional attorney with over 15+ years of experience, " +
	"specializing in drafting precise, enforceable legal documents. You have extensive " +
	"experience in contract law, regulatory compliance, and risk allocation strategies " +
	"across multiple industries."

const termsOfServiceSections = `    Introduction & Acceptance of Terms (effective date, agreement upon use, capacity to contract, modifications to terms)
    Definitions (key terms like "Service," "User," "Content," "Platform")
    User Accounts & Registration (creation requirements, account security, accuracy of information, suspension or termination)
    License to Use the Service (grant of limited non-exclusive license, restrictions on use)
    User Responsibilities & Conduct (acceptable use policy, compliance with laws, responsibility for user-generated content)
    Intellectual Property Rights (ownership of the platform, ownership of user content, license granted by user, copyright infringement policy, trademarks)
    Content Disclaimers & Limitations
    Privacy Policy (incorporation by reference, brief statement on data collection)
    Fees, Payments, & Subscriptions (pricing, billing cycles, refund policies, cancellations, taxes)
    Third-Party Services & Links
    Disclaimers of Warranties ("AS IS" and "AS AVAILABLE" basis, no implied warranties)
    Limitation of Liability (exclusion of indirect damages, cap on total liability)
    Indemnification
    Termination (right to suspend for breach, user's right to terminate, survival of clauses)
    Governing Law & Jurisdiction
    Dispute Resolution (arbitration, class action waiver, informal resolution first)
    General Provisions (entire agreement, severability, waiver, assignment, force majeure)`

const privacyPolicySections = `    Introduction & Scope (effective date, who the policy applies to, the data controller)
    Definitions (personal data, processing, controller, processor)
    Information We Collect (data provided by users, data collected automatically, data from third parties)
    How We Use Information (purposes of processing, legal bases where applicable)
    Cookies & Tracking Technologies
    Sharing & Disclosure of Information (service providers, legal requirements, business transfers)
    International Data Transfers
    Data Retention
    Data Security
    User Rights (access, correction, deletion, portability, objection, withdrawal of consent)
    Children's Privacy
    Changes to This Policy
    Contact Information`

// BuildPrompts assembles the system and user prompts for a generation
// request. The document structure checklist depends on the contract type;
// language, jurisdiction and custom sections extend the base instructions.
func BuildPrompts(req *entity.GenerateContractRequest) (string, string) {
	var sectionList, documentName string
	switch req.ContractType {
	case entity.ContractTypePrivacyPolicy:
		documentName = "Privacy Policy"
		sectionList = privacyPolicySections
	default:
		documentName = "Legal Terms of Service"
		sectionList = termsOfServiceSections
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Instructions: Generate a highly comprehensive and exhaustive %s document for a company. ", documentName)
	b.WriteString("The document should be structured with clear headings and subheadings, use formal legal language, ")
	b.WriteString("and cover all essential legal and operational considerations.\n\n")

	b.WriteString("Guidelines:\n")
	b.WriteString("- Include proper section numbering and formatting.\n")
	b.WriteString("- Document should be at least 10 pages long.\n")
	b.WriteString("- Ensure the language is clear, unambiguous, and covers potential legal risks comprehensively, ")
	b.WriteString("mirroring the depth and detail found in professional legal documents. ")
	b.WriteString("Avoid overly simplistic or conversational language. BE VERY PROFESSIONAL\n")
	b.WriteString("- Identify and explain all applicable laws and regulations, including data privacy, intellectual property, and antitrust laws.\n")
	fmt.Fprintf(&b, "- The %s should ideally include, but not be limited to, the following sections and detailed clauses within each:\n%s\n", documentName, sectionList)

	if len(req.CustomSections) > 0 {
		b.WriteString("- IMPORTANT!: In addition to the sections above, the document MUST include the following sections requested by the customer:\n")
		for _, title := range req.CustomSections {
			fmt.Fprintf(&b, "    %s\n", strings.TrimSpace(title))
		}
	}

	b.WriteString("- IMPORTANT!: Any section not relevant to the customer's request can be omitted as long as it's not a legal requirement ")
	b.WriteString("but make sure to add any field that might be missing but important to this request.\n")
	b.WriteString("- IMPORTANT!: When a company's location, jurisdiction or industry is specified in the user request, ")
	b.WriteString("make sure to include the relevant laws and regulations in the document.\n")

	if req.Jurisdiction != "" {
		fmt.Fprintf(&b, "- IMPORTANT!: The document must be drafted for the jurisdiction of %s and reference its applicable laws.\n", req.Jurisdiction)
	}
	if req.Language != "" && req.Language != "en" {
		fmt.Fprintf(&b, "- IMPORTANT!: Write the entire document in the language with ISO 639-1 code %q.\n", req.Language)
	}

	b.WriteString("\nOutput Format:\n")
	b.WriteString("- IMPORTANT!: Ensure the document generated is structured in HTML format that is correct and can be displayed in a browser.\n")
	b.WriteString("- Use proper HTML tags (<h1>, <h2>, <h3>, <p>, <ul>, <li>)\n")
	b.WriteString("- Include CSS classes for styling\n")
	b.WriteString("- Structure with clear sections and subsections\n")
	b.WriteString("- Ensure readability and clarity\n")
	b.WriteString("- DO NOT start with ```html.\n")

	b.WriteString("\nUser request: ")
	b.WriteString(describeBusiness(&req.BusinessContext))

	return systemPrompt, b.String()
}

func describeBusiness(bc *entity.BusinessContext) string {
	var parts []string
	parts = append(parts, bc.Description)
	if bc.Industry != "" {
		parts = append(parts, fmt.Sprintf("Industry: %s.", bc.Industry))
	}
	if bc.Location != "" {
		parts = append(parts, fmt.Sprintf("Company location: %s.", bc.Location))
	}
	if bc.CompanySize != "" {
		parts = append(parts, fmt.Sprintf("Company size: %s.", bc.CompanySize))
	}
	return strings.Join(parts, " ")
}
